package main

import (
	"encoding"
	"fmt"
)

// enumFlag exposes text unmarshalable enums as command line flags.
type enumFlag struct {
	value interface {
		encoding.TextUnmarshaler
		fmt.Stringer
	}
	typ string
}

func (f enumFlag) String() string {
	return f.value.String()
}

func (f enumFlag) Set(s string) error {
	return f.value.UnmarshalText([]byte(s))
}

func (f enumFlag) Type() string {
	return f.typ
}
