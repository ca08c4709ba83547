package report

import (
	"encoding"
	"fmt"
)

// Format is an output format of the report.
type Format int

const (
	FormatInvalid Format = iota

	// FormatTable renders the fixed-column text table.
	FormatTable

	// FormatJSON renders a JSON array of rows.
	FormatJSON
)

var formatValueMap = map[Format]string{
	FormatTable: "table",
	FormatJSON:  "json",
}

func (f Format) String() string {
	v, ok := formatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Format)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (f *Format) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown report format %q", text)
}

func (f Format) MarshalText() ([]byte, error) {
	v, ok := formatValueMap[f]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Format(%d)", f)
	}

	return []byte(v), nil
}
