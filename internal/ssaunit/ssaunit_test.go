package ssaunit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
)

const source = `package p

func Double(a int) int {
	return a * 2
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type T struct{ n int }

func (t *T) Scale(s string, k int) int {
	return t.n * k
}

func Outer(v int) func() int {
	return func() int {
		return v + 1
	}
}

func init() {
	Double(1)
}
`

func buildPackage(t *testing.T) *ssa.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", source, parser.SkipObjectResolution)
	require.NoError(t, err)

	pkg, _, err := ssautil.BuildPackage(
		&types.Config{},
		fset,
		types.NewPackage("example.com/p", "p"),
		[]*ast.File{file},
		ssa.SanityCheckFunctions,
	)
	require.NoError(t, err)

	return pkg
}

func byName(fns []fragile.Function) map[string]fragile.Function {
	res := map[string]fragile.Function{}
	for _, fn := range fns {
		res[fn.Name()] = fn
	}
	return res
}

func TestSourceFunctions(t *testing.T) {
	pkg := buildPackage(t)

	fns := SourceFunctions(pkg)
	var names []string
	for _, fn := range fns {
		names = append(names, New(fn).Name())
	}

	assert.Equal(t, []string{"Double", "Abs", "(*T).Scale", "Outer", "Outer$1", "init#1"}, names)
	assert.Nil(t, SourceFunctions(nil))
}

func TestFuncView(t *testing.T) {
	pkg := buildPackage(t)
	fns := byName(FromFunctions(SourceFunctions(pkg)))

	double := fns["Double"]
	require.NotNil(t, double)
	assert.Equal(t, []string{"int"}, double.Params())
	assert.Equal(t, "p.go", double.SourceFile())
	require.Equal(t, 1, double.NumBlocks())
	pos, ok := double.BlockPosition(0)
	require.True(t, ok)
	assert.Equal(t, 4, pos.Line)
	assert.Positive(t, pos.Column)

	scale := fns["(*T).Scale"]
	require.NotNil(t, scale)
	assert.Equal(t, []string{"string", "int"}, scale.Params())

	abs := fns["Abs"]
	require.NotNil(t, abs)
	assert.Equal(t, 3, abs.NumBlocks())
	for i := range abs.NumBlocks() {
		pos, ok := abs.BlockPosition(i)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, pos.Line, 7)
		assert.LessOrEqual(t, pos.Line, 12)
	}
}

func TestClassifySSA(t *testing.T) {
	pkg := buildPackage(t)
	fns := FromFunctions(SourceFunctions(pkg))
	named := byName(fns)

	// Whole lines 3..5 with any column covers Double only.
	clusters := []cluster.Cluster{{
		Start: cluster.Position{Line: 3, Column: 0},
		End:   cluster.Position{Line: 5, Column: 200},
	}}

	res := fragile.Classify(fns, clusters)
	assert.Equal(t, 1, res.Len())
	assert.True(t, res.Has(named["Double"]))
	assert.False(t, res.Has(named["Abs"]))

	// Body of the closure.
	clusters = append(clusters, cluster.Cluster{
		Start: cluster.Position{Line: 22, Column: 0},
		End:   cluster.Position{Line: 22, Column: 200},
	})
	res = fragile.Classify(fns, clusters)
	assert.True(t, res.Has(named["Outer$1"]))
	assert.False(t, res.Has(named["Outer"]))
}
