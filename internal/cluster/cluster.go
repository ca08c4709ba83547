package cluster

import (
	"errors"
	"fmt"
)

// Cluster is a rectangular source region flagged as fragile.
type Cluster struct {
	Start Position `yaml:"start" json:"start"`
	End   Position `yaml:"end" json:"end"`
}

// Matcher decides whether a resolved position belongs to a cluster.
type Matcher func(pos Position, c Cluster) bool

// IsWithin reports whether pos falls into c. Lines and columns are checked as
// independent ranges, see package documentation.
func IsWithin(pos Position, c Cluster) bool {
	return pos.Line >= c.Start.Line &&
		pos.Line <= c.End.Line &&
		pos.Column >= c.Start.Column &&
		pos.Column <= c.End.Column
}

func (c Cluster) String() string {
	return c.Start.String() + "-" + c.End.String()
}

// Validate checks the ordering expected by callers: non-negative coordinates
// and start not after end on either axis. IsWithin never calls it.
func (c Cluster) Validate() error {
	var errs []error
	if c.Start.Line < 0 || c.Start.Column < 0 {
		errs = append(errs, fmt.Errorf("negative start position %s", c.Start))
	}
	if c.End.Line < 0 || c.End.Column < 0 {
		errs = append(errs, fmt.Errorf("negative end position %s", c.End))
	}
	if c.Start.Line > c.End.Line {
		errs = append(errs, fmt.Errorf("start line %d is after end line %d", c.Start.Line, c.End.Line))
	}
	if c.Start.Column > c.End.Column {
		errs = append(errs, fmt.Errorf("start column %d is after end column %d", c.Start.Column, c.End.Column))
	}

	return errors.Join(errs...)
}
