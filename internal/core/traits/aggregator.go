package traits

import (
	"log"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"

	"github.com/churnlens/churnlens/internal/core/model"
	"github.com/churnlens/churnlens/internal/core/similarity"
)

// DefaultTopK is how many shared traits are kept per high-centrality node.
const DefaultTopK = 4

// TraitCount pairs a formatted trait string with its occurrence count.
type TraitCount struct {
	Trait string
	Count int
}

// Tally is the merged result across all selected nodes: a flat count per
// trait string, and a category -> value -> count split. Both maps are
// unordered; ordering is a presentation concern.
type Tally struct {
	Totals     map[string]int
	Categories map[string]map[string]int
}

// Aggregator ranks and merges the traits high-centrality customers share
// with their graph neighbors.
type Aggregator struct {
	pred *similarity.Predicate
	topK int
}

func NewAggregator(pred *similarity.Predicate) *Aggregator {
	return &Aggregator{pred: pred, topK: DefaultTopK}
}

// TopSharedTraits tallies the traits node shares with each of its direct
// neighbors and returns the topK by count. Ties keep first-discovery order
// (stable sort on descending count). Neighbors outside the customer list are
// ignored.
func (a *Aggregator) TopSharedTraits(g graph.Graph, node int64, customers []model.Customer) []TraitCount {
	counts := make(map[string]int)
	var order []string

	it := g.From(node)
	for it.Next() {
		idx := it.Node().ID()
		if idx < 0 || int(idx) >= len(customers) {
			continue
		}
		for _, trait := range a.pred.SharedTraits(customers[node], customers[idx]) {
			s := trait.String()
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	ranked := make([]TraitCount, 0, len(order))
	for _, s := range order {
		ranked = append(ranked, TraitCount{Trait: s, Count: counts[s]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > a.topK {
		ranked = ranked[:a.topK]
	}
	return ranked
}

// Aggregate merges the per-node top-K lists of the selected nodes. A
// selected node outside the customer list is logged and skipped; a node with
// no shared traits is skipped silently.
func (a *Aggregator) Aggregate(g graph.Graph, selected []int64, customers []model.Customer) Tally {
	tally := Tally{
		Totals:     make(map[string]int),
		Categories: make(map[string]map[string]int),
	}

	for _, node := range selected {
		if node < 0 || int(node) >= len(customers) {
			log.Printf("Invalid node index: %d", node)
			continue
		}
		top := a.TopSharedTraits(g, node, customers)
		if len(top) == 0 {
			continue
		}
		for _, tc := range top {
			tally.Totals[tc.Trait] += tc.Count

			parts := strings.SplitN(tc.Trait, ":", 2)
			if len(parts) != 2 {
				continue
			}
			category := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if tally.Categories[category] == nil {
				tally.Categories[category] = make(map[string]int)
			}
			tally.Categories[category][value] += tc.Count
		}
	}

	return tally
}

// Breakdown converts a tally into category records with percentages:
// category share of the grand total and value share of the category total,
// each rounded to one decimal, half away from zero. Slice order follows map
// iteration; callers needing stable output sort at the presentation
// boundary.
func Breakdown(tally Tally) []model.CategoryBreakdown {
	grand := 0
	for _, values := range tally.Categories {
		for _, n := range values {
			grand += n
		}
	}
	if grand == 0 {
		return nil
	}

	out := make([]model.CategoryBreakdown, 0, len(tally.Categories))
	for category, values := range tally.Categories {
		total := 0
		for _, n := range values {
			total += n
		}
		cb := model.CategoryBreakdown{
			Category:   category,
			TotalCount: total,
			Percentage: round1(100 * float64(total) / float64(grand)),
		}
		for value, n := range values {
			cb.Values = append(cb.Values, model.ValueBreakdown{
				Value:      value,
				Count:      n,
				Percentage: round1(100 * float64(n) / float64(total)),
			})
		}
		out = append(out, cb)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
