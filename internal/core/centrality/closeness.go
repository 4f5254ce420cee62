package centrality

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

// Closeness computes closeness centrality for every node in subset:
// (|subset|-1) divided by the sum of unit-weight shortest-path distances
// from the node to each other subset member. Paths run over the full graph,
// so non-subset nodes still carry connectivity. A pair with no path
// contributes +Inf, which drives the score to zero; a subset of one yields
// zero rather than NaN.
func Closeness(g graph.Graph, subset []int64) map[int64]float64 {
	dist := newDistanceTable(g)
	scores := make(map[int64]float64, len(subset))
	for _, u := range subset {
		var sum float64
		for _, v := range subset {
			if u == v {
				continue
			}
			sum += dist.between(u, v)
		}
		if sum == 0 {
			scores[u] = 0
			continue
		}
		scores[u] = float64(len(subset)-1) / sum
	}
	return scores
}

// distanceTable memoizes shortest-path trees per source. A Dijkstra tree is
// computed once on first need; the symmetric lookup v->u reuses the tree
// already built for either endpoint instead of recomputing.
type distanceTable struct {
	g     graph.Graph
	trees map[int64]path.Shortest
}

func newDistanceTable(g graph.Graph) *distanceTable {
	return &distanceTable{g: g, trees: make(map[int64]path.Shortest)}
}

func (t *distanceTable) between(u, v int64) float64 {
	if tree, ok := t.trees[u]; ok {
		return tree.WeightTo(v)
	}
	if tree, ok := t.trees[v]; ok {
		// Undirected unit-weight graph: distances are symmetric.
		return tree.WeightTo(u)
	}
	tree := path.DijkstraFrom(t.g.Node(u), t.g)
	t.trees[u] = tree
	return tree.WeightTo(v)
}
