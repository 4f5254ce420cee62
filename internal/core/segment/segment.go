package segment

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/churnlens/churnlens/internal/core/model"
)

// Detect returns the connected components of the similarity graph with at
// least two members: customers in the same component form a segment.
// Singletons are not segments. Results come back largest first, ties by
// smallest member ID.
func Detect(g graph.Undirected) []model.Segment {
	var segments []model.Segment
	for _, component := range topo.ConnectedComponents(g) {
		if len(component) < 2 {
			continue
		}
		members := make([]int64, len(component))
		for i, n := range component {
			members[i] = n.ID()
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		segments = append(segments, model.Segment{Members: members, Size: len(members)})
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Size != segments[j].Size {
			return segments[i].Size > segments[j].Size
		}
		return segments[i].Members[0] < segments[j].Members[0]
	})
	return segments
}
