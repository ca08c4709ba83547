package markpass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
)

func clustersFile() string {
	return filepath.Join(analysistest.TestData(), "clusters.yaml")
}

func TestAnalyzerFixedClusters(t *testing.T) {
	clusters, err := cluster.LoadFile(clustersFile(), false)
	require.NoError(t, err)

	results := analysistest.Run(t, analysistest.TestData(), NewAnalyzer(clusters), "a")
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	set, ok := results[0].Result.(*fragile.Set)
	require.True(t, ok)
	assert.Equal(t, 2, set.Len())
}

func TestAnalyzerFlags(t *testing.T) {
	require.NoError(t, Analyzer.Flags.Set("clusters", clustersFile()))
	t.Cleanup(func() {
		_ = Analyzer.Flags.Set("clusters", "")
	})

	analysistest.Run(t, analysistest.TestData(), Analyzer, "a")
}

func TestMarkerSource(t *testing.T) {
	m := &marker{}
	clusters, err := m.source()
	require.NoError(t, err)
	assert.Empty(t, clusters)

	fixed := &marker{fixed: []cluster.Cluster{}}
	clusters, err = fixed.source()
	require.NoError(t, err)
	assert.NotNil(t, clusters)
	assert.Empty(t, clusters)

	require.NoError(t, Analyzer.Flags.Set("clusters", filepath.Join(t.TempDir(), "missing.yaml")))
	t.Cleanup(func() {
		_ = Analyzer.Flags.Set("clusters", "")
	})
	_, err = m.source()
	assert.Error(t, err)
}

func TestMarkerSourceCache(t *testing.T) {
	t.Cleanup(func() {
		_ = Analyzer.Flags.Set("clusters", "")
		_ = Analyzer.Flags.Set("strict", "false")
	})

	m := &marker{}
	require.NoError(t, Analyzer.Flags.Set("clusters", clustersFile()))
	clusters, err := m.source()
	require.NoError(t, err)
	assert.Len(t, clusters, 3)

	// 7:50-9:40 has start column after end column.
	require.NoError(t, Analyzer.Flags.Set("strict", "true"))
	_, err = m.source()
	assert.ErrorContains(t, err, "start column 50 is after end column 40")

	require.NoError(t, Analyzer.Flags.Set("strict", "false"))
	clusters, err = m.source()
	require.NoError(t, err)
	assert.Len(t, clusters, 3)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.NoError(t, Analyzer.Flags.Set("clusters", empty))
	clusters, err = m.source()
	require.NoError(t, err)
	assert.Empty(t, clusters)

	require.NoError(t, os.Remove(empty))
	clusters, err = m.source()
	require.NoError(t, err, "empty file must be served from cache")
	assert.Empty(t, clusters)
}
