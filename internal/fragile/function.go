package fragile

import (
	"github.com/sirkon/fragile/internal/cluster"
)

// Function is a read-only view of a compiled function. Implementations must be
// comparable and are tracked by identity, so pointer types are expected.
type Function interface {
	// Name of the function.
	Name() string

	// Params returns a descriptor per parameter. Its length is the parameter count.
	Params() []string

	// NumBlocks returns the number of code blocks.
	NumBlocks() int

	// BlockPosition returns the location of the i-th block's leading
	// instruction. It reports false when no location is attached.
	BlockPosition(i int) (cluster.Position, bool)

	// SourceFile is the name of the file the function originates from.
	SourceFile() string
}

// Block is an in-memory code block. Loc is nil for blocks without location.
type Block struct {
	Loc *cluster.Position
}

// At creates a block located at line:col.
func At(line, col int) Block {
	return Block{Loc: &cluster.Position{Line: line, Column: col}}
}

// Unit is an in-memory Function.
type Unit struct {
	FuncName   string
	ParamTypes []string
	File       string
	Blocks     []Block
}

var _ Function = (*Unit)(nil)

func (u *Unit) Name() string       { return u.FuncName }
func (u *Unit) Params() []string   { return u.ParamTypes }
func (u *Unit) NumBlocks() int     { return len(u.Blocks) }
func (u *Unit) SourceFile() string { return u.File }

func (u *Unit) BlockPosition(i int) (cluster.Position, bool) {
	loc := u.Blocks[i].Loc
	if loc == nil {
		return cluster.Position{}, false
	}

	return *loc, true
}
