// Package ssaunit exposes SSA functions to the fragility classifier.
package ssaunit

import (
	"cmp"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ssa"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
)

// Func is a [fragile.Function] view of an SSA function.
type Func struct {
	fn   *ssa.Function
	fset *token.FileSet
}

var _ fragile.Function = (*Func)(nil)

// New wraps fn.
func New(fn *ssa.Function) *Func {
	return &Func{fn: fn, fset: fn.Prog.Fset}
}

// FromFunctions wraps every function of the list.
func FromFunctions(fns []*ssa.Function) []fragile.Function {
	res := make([]fragile.Function, 0, len(fns))
	for _, fn := range fns {
		res = append(res, New(fn))
	}

	return res
}

// SSA returns the wrapped function.
func (f *Func) SSA() *ssa.Function {
	return f.fn
}

// Name returns the package-relative name, like "(*T).Method" or "Outer$1".
func (f *Func) Name() string {
	if f.fn.Pkg == nil {
		return f.fn.String()
	}

	return f.fn.RelString(f.fn.Pkg.Pkg)
}

// Params renders parameter types, receiver excluded.
func (f *Func) Params() []string {
	params := f.fn.Signature.Params()
	var qf types.Qualifier
	if f.fn.Pkg != nil {
		qf = types.RelativeTo(f.fn.Pkg.Pkg)
	}

	res := make([]string, params.Len())
	for i := range params.Len() {
		res[i] = types.TypeString(params.At(i).Type(), qf)
	}

	return res
}

func (f *Func) NumBlocks() int {
	return len(f.fn.Blocks)
}

// BlockPosition resolves the position of the block's first instruction.
func (f *Func) BlockPosition(i int) (cluster.Position, bool) {
	b := f.fn.Blocks[i]
	if len(b.Instrs) == 0 {
		return cluster.Position{}, false
	}

	pos := b.Instrs[0].Pos()
	if !pos.IsValid() {
		return cluster.Position{}, false
	}

	p := f.fset.Position(pos)
	return cluster.Position{Line: p.Line, Column: p.Column}, true
}

// SourceFile returns the file the function is declared in. Functions without
// syntax fall back to their package path.
func (f *Func) SourceFile() string {
	if pos := f.fn.Pos(); pos.IsValid() {
		return f.fset.Position(pos).Filename
	}
	if f.fn.Pkg != nil {
		return f.fn.Pkg.Pkg.Path()
	}

	return ""
}

// SourceFunctions collects functions, methods and closures declared in the
// given packages in source order. Synthetic wrappers and generic
// instantiations are left out.
func SourceFunctions(pkgs ...*ssa.Package) []*ssa.Function {
	seen := map[*ssa.Function]bool{}
	var res []*ssa.Function

	var collect func(fn *ssa.Function)
	collect = func(fn *ssa.Function) {
		if fn == nil || seen[fn] {
			return
		}
		seen[fn] = true

		if fn.Synthetic == "" && fn.Origin() == nil && fn.Pos().IsValid() {
			res = append(res, fn)
		}
		for _, anon := range fn.AnonFuncs {
			collect(anon)
		}
	}

	for _, pkg := range pkgs {
		if pkg == nil {
			continue
		}

		for _, mem := range pkg.Members {
			switch mem := mem.(type) {
			case *ssa.Function:
				collect(mem)
				if mem.Synthetic != "" {
					// Package initializer calls init#N functions declared by user.
					for _, callee := range staticCallees(mem) {
						if callee.Pkg == pkg {
							collect(callee)
						}
					}
				}

			case *ssa.Type:
				named, ok := mem.Type().(*types.Named)
				if !ok || types.IsInterface(named) {
					continue
				}
				for i := range named.NumMethods() {
					collect(pkg.Prog.FuncValue(named.Method(i)))
				}
			}
		}
	}

	slices.SortFunc(res, func(a, b *ssa.Function) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	return res
}

func staticCallees(fn *ssa.Function) []*ssa.Function {
	var res []*ssa.Function
	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok {
				continue
			}
			if callee := call.Call.StaticCallee(); callee != nil {
				res = append(res, callee)
			}
		}
	}

	return res
}
