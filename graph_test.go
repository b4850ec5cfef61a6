package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 3)
	g.AddEdge("c", "e", 1)
	g.Collapse()

	assert.Equal(t, map[string]bool{"a": true, "c": true, "d": true, "e": true}, g.Nodes)
	assert.Equal(t, 3, g.Edges["a"]["c"])
	assert.Equal(t, 3, g.Edges["c"]["a"])
	assert.NotContains(t, g.Edges, "b")
}

func TestCollapseZeroKey(t *testing.T) {
	var g Graph[Pt]
	g.AddEdge(Pt{1, 0}, Pt{0, 0}, 1)
	g.AddEdge(Pt{1, 0}, Pt{2, 0}, 1)
	g.Collapse()

	assert.Len(t, g.Nodes, 2)
	assert.Equal(t, 2, g.Edges[Pt{0, 0}][Pt{2, 0}])
}

func TestLongestPath(t *testing.T) {
	var g Graph[string]
	g.AddEdge("s", "a", 1)
	g.AddEdge("s", "b", 5)
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "e", 1)
	g.AddEdge("b", "e", 1)

	got, ok := g.LongestPath("s", "e")
	require.True(t, ok)
	assert.Equal(t, 7, got) // s, b, a, e

	g.AddNode("x")
	_, ok = g.LongestPath("s", "x")
	assert.False(t, ok)
}

func TestCollapseKeep(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 3)
	g.Collapse("b")

	assert.Equal(t, map[string]bool{"a": true, "b": true, "d": true}, g.Nodes)
	assert.Equal(t, 1, g.Edges["a"]["b"])
	assert.Equal(t, 5, g.Edges["b"]["d"])
}

func TestReachableNodes(t *testing.T) {
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(4, 5, 1)

	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, g.ReachableNodes(1))
	g.RemoveEdge(1, 2)
	assert.Equal(t, map[int]bool{1: true}, g.ReachableNodes(1))
}
