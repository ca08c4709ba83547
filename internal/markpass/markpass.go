// Package markpass runs fragility classification as a go/analysis pass, so
// it can be plugged into any analysis driver by name.
package markpass

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
	"github.com/sirkon/fragile/internal/ssaunit"
)

const doc = `markfragile reports functions intersecting fragile source clusters

A function is fragile when the leading instruction of any of its SSA blocks
is located inside a cluster. Clusters are read from the YAML file given with
the -clusters flag.`

// Analyzer reads clusters from the -clusters flag.
var Analyzer = newAnalyzer(nil)

var (
	flagClusters string
	flagStrict   bool
)

func init() {
	Analyzer.Flags.StringVar(&flagClusters, "clusters", "", "YAML file with fragile clusters")
	Analyzer.Flags.BoolVar(&flagStrict, "strict", false, "reject clusters with start after end or negative coordinates")
}

// NewAnalyzer creates an analyzer with a fixed list of clusters.
func NewAnalyzer(clusters []cluster.Cluster) *analysis.Analyzer {
	if clusters == nil {
		clusters = []cluster.Cluster{}
	}
	return newAnalyzer(clusters)
}

func newAnalyzer(clusters []cluster.Cluster) *analysis.Analyzer {
	m := &marker{fixed: clusters}
	return &analysis.Analyzer{
		Name:       "markfragile",
		Doc:        doc,
		Requires:   []*analysis.Analyzer{buildssa.Analyzer},
		Run:        m.run,
		ResultType: reflect.TypeOf((*fragile.Set)(nil)),
	}
}

type marker struct {
	// fixed is nil for the flag driven analyzer.
	fixed []cluster.Cluster

	mu     sync.Mutex
	cached map[sourceKey][]cluster.Cluster
}

type sourceKey struct {
	path   string
	strict bool
}

// source returns clusters to match against. Flag based clusters are loaded
// once per distinct path and strictness.
func (m *marker) source() ([]cluster.Cluster, error) {
	if m.fixed != nil {
		return m.fixed, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if flagClusters == "" {
		return nil, nil
	}
	key := sourceKey{path: flagClusters, strict: flagStrict}
	if clusters, ok := m.cached[key]; ok {
		return clusters, nil
	}

	clusters, err := cluster.LoadFile(key.path, key.strict)
	if err != nil {
		return nil, err
	}
	if m.cached == nil {
		m.cached = map[sourceKey][]cluster.Cluster{}
	}
	m.cached[key] = clusters

	return clusters, nil
}

func (m *marker) run(pass *analysis.Pass) (any, error) {
	clusters, err := m.source()
	if err != nil {
		return nil, fmt.Errorf("get clusters: %w", err)
	}

	ssaResult := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	fns := ssaunit.FromFunctions(ssaResult.SrcFuncs)
	set := fragile.Classify(fns, clusters)

	// Source order keeps diagnostics stable.
	for _, fn := range fns {
		idx, ok := set.ClusterOf(fn)
		if !ok {
			continue
		}

		pass.Reportf(
			fn.(*ssaunit.Func).SSA().Pos(),
			"function %s intersects fragile cluster %s",
			fn.Name(),
			clusters[idx],
		)
	}

	return set, nil
}
