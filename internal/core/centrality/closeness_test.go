package centrality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/graph/simple"
)

// line builds 0-1-2-...-(n-1).
func line(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n-1; i++ {
		g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(i+1))))
	}
	return g
}

// star builds center 0 with leaves 1..n.
func star(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	g.AddNode(simple.Node(0))
	for i := 1; i <= n; i++ {
		g.AddNode(simple.Node(int64(i)))
		g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(int64(i))))
	}
	return g
}

func TestCloseness_Line(t *testing.T) {
	g := line(3)

	scores := Closeness(g, []int64{0, 1, 2})

	// Middle node: distances 1+1. Ends: 1+2.
	assert.InDelta(t, 1.0, scores[1], 1e-9)
	assert.InDelta(t, 2.0/3.0, scores[0], 1e-9)
	assert.InDelta(t, 2.0/3.0, scores[2], 1e-9)
}

func TestCloseness_SubsetPathsThroughExcludedNodes(t *testing.T) {
	g := line(3)

	// Node 1 is outside the subset but still carries the 0-2 path.
	scores := Closeness(g, []int64{0, 2})

	assert.InDelta(t, 0.5, scores[0], 1e-9)
	assert.InDelta(t, 0.5, scores[2], 1e-9)
}

func TestCloseness_DisconnectedIsZero(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.AddNode(simple.Node(0))
	g.AddNode(simple.Node(1))

	scores := Closeness(g, []int64{0, 1})

	// Infinite distance sum drives the score to zero, never NaN.
	assert.Equal(t, 0.0, scores[0])
	assert.Equal(t, 0.0, scores[1])
}

func TestCloseness_SingleMemberSubset(t *testing.T) {
	g := line(3)

	scores := Closeness(g, []int64{1})

	assert.Equal(t, 0.0, scores[1])
}

func TestCloseness_StarCenterDominates(t *testing.T) {
	g := star(4)

	scores := Closeness(g, []int64{0, 1, 2, 3, 4})

	// The hub reaches everything in one hop; leaves need two for each other.
	assert.InDelta(t, 1.0, scores[0], 1e-9)
	for leaf := int64(1); leaf <= 4; leaf++ {
		assert.Greater(t, scores[0], scores[leaf])
		assert.InDelta(t, 4.0/7.0, scores[leaf], 1e-9)
	}
}

func TestCloseness_EmptySubset(t *testing.T) {
	scores := Closeness(line(2), nil)
	assert.Empty(t, scores)
}
