package graph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/churnlens/churnlens/internal/core/model"
	"github.com/churnlens/churnlens/internal/core/similarity"
)

// Build constructs the undirected similarity graph over customers. Node ID i
// wraps customers[i]; the node indexing and the customer list must stay in
// lockstep. Every ordered pair is evaluated — the predicate is symmetric and
// SetEdge collapses the duplicate, so no multi-edges accumulate.
func Build(customers []model.Customer, pred *similarity.Predicate) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range customers {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := range customers {
		for j := range customers {
			if i == j {
				continue
			}
			if pred.IsNeighbor(customers[i], customers[j]) {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}
	return g
}
