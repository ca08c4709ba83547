package config

import (
	"encoding"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColorMode controls colored output.
type ColorMode int

const (
	ColorInvalid ColorMode = iota
	ColorAuto
	ColorAlways
	ColorNever
)

var colorModeValueMap = map[ColorMode]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (m ColorMode) String() string {
	v, ok := colorModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*ColorMode)(nil)

func (m *ColorMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range colorModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown color mode %q", text)
}

// Enabled resolves the mode for the given output. Auto mode respects NO_COLOR
// and enables colors for terminals only.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}
