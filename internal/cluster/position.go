package cluster

import (
	"bytes"
	"encoding"
	"fmt"
	"strconv"
)

// Position is a line:column point in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

var (
	_ encoding.TextMarshaler   = Position{}
	_ encoding.TextUnmarshaler = (*Position)(nil)
)

// MarshalText renders the position as "<line>:<column>".
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "<line>:<column>". A bare "<line>" means column 0.
func (p *Position) UnmarshalText(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) == 0 {
		return fmt.Errorf("empty position")
	}

	rawLine, rawCol, hasCol := bytes.Cut(s, []byte{':'})
	line, err := strconv.Atoi(string(rawLine))
	if err != nil {
		return fmt.Errorf("parse line of position %q: %w", s, err)
	}

	var col int
	if hasCol {
		col, err = strconv.Atoi(string(rawCol))
		if err != nil {
			return fmt.Errorf("parse column of position %q: %w", s, err)
		}
	}

	p.Line = line
	p.Column = col
	return nil
}
