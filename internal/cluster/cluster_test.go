package cluster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWithin(t *testing.T) {
	c := Cluster{Start: Position{Line: 1, Column: 1}, End: Position{Line: 2, Column: 1}}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{name: "start corner", pos: Position{Line: 1, Column: 1}, want: true},
		{name: "end corner", pos: Position{Line: 2, Column: 1}, want: true},
		{name: "column before range", pos: Position{Line: 1, Column: 0}, want: false},
		{name: "column after range", pos: Position{Line: 1, Column: 2}, want: false},
		{name: "line before range", pos: Position{Line: 0, Column: 1}, want: false},
		{name: "line after range", pos: Position{Line: 3, Column: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithin(tt.pos, c))
			// Same inputs, same answer.
			assert.Equal(t, tt.want, IsWithin(tt.pos, c))
		})
	}
}

func TestIsWithinIndependentAxes(t *testing.T) {
	// Lines 10..20, columns 5..8. Reading order would accept 15:1, the axes
	// are checked separately though.
	c := Cluster{Start: Position{Line: 10, Column: 5}, End: Position{Line: 20, Column: 8}}

	assert.False(t, IsWithin(Position{Line: 15, Column: 1}, c), "middle line, column left of range")
	assert.False(t, IsWithin(Position{Line: 15, Column: 40}, c), "middle line, column right of range")
	assert.True(t, IsWithin(Position{Line: 15, Column: 6}, c))

	// Reversed columns never match anything.
	reversed := Cluster{Start: Position{Line: 1, Column: 9}, End: Position{Line: 5, Column: 2}}
	for col := 0; col < 12; col++ {
		assert.False(t, IsWithin(Position{Line: 3, Column: col}, reversed))
	}
}

func TestClusterValidate(t *testing.T) {
	ok := Cluster{Start: Position{Line: 1, Column: 1}, End: Position{Line: 2, Column: 1}}
	require.NoError(t, ok.Validate())

	bad := Cluster{Start: Position{Line: 3, Column: -1}, End: Position{Line: 2, Column: 0}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative start position")
	assert.Contains(t, err.Error(), "start line 3 is after end line 2")
}

func TestPositionText(t *testing.T) {
	var p Position
	require.NoError(t, p.UnmarshalText([]byte(" 12:4 ")))
	assert.Equal(t, Position{Line: 12, Column: 4}, p)

	require.NoError(t, p.UnmarshalText([]byte("7")))
	assert.Equal(t, Position{Line: 7}, p)

	assert.Error(t, p.UnmarshalText([]byte("")))
	assert.Error(t, p.UnmarshalText([]byte("a:1")))
	assert.Error(t, p.UnmarshalText([]byte("1:b")))

	b, err := Position{Line: 3, Column: 9}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3:9", string(b))
	assert.Equal(t, "1:1-2:1", Cluster{Start: Position{1, 1}, End: Position{2, 1}}.String())
}

func TestLoad(t *testing.T) {
	const doc = `
clusters:
  - start: "1:1"
    end: "2:1"
  - start: "10:0"
    end: "12:80"
`
	clusters, err := Load(strings.NewReader(doc), true)
	require.NoError(t, err)
	assert.Equal(t, []Cluster{
		{Start: Position{Line: 1, Column: 1}, End: Position{Line: 2, Column: 1}},
		{Start: Position{Line: 10, Column: 0}, End: Position{Line: 12, Column: 80}},
	}, clusters)
}

func TestLoadStrict(t *testing.T) {
	const doc = `
clusters:
  - start: "5:1"
    end: "2:1"
`
	clusters, err := Load(strings.NewReader(doc), false)
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	_, err = Load(strings.NewReader(doc), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster #0 5:1-2:1")
}

func TestLoadEmptyAndUnknownFields(t *testing.T) {
	clusters, err := Load(strings.NewReader(""), true)
	require.NoError(t, err)
	assert.Empty(t, clusters)

	_, err = Load(strings.NewReader("clusterz: []\n"), false)
	assert.Error(t, err)
}
