package core

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/churnlens/churnlens/internal/core/centrality"
	custgraph "github.com/churnlens/churnlens/internal/core/graph"
	"github.com/churnlens/churnlens/internal/core/model"
	"github.com/churnlens/churnlens/internal/core/segment"
	"github.com/churnlens/churnlens/internal/core/similarity"
	"github.com/churnlens/churnlens/internal/core/traits"
)

// Group labels used in reports.
const (
	ChurnGroupLabel    = "Churn"
	NotChurnGroupLabel = "Not Churn"
)

// Analyzer runs the churn similarity pipeline: graph construction, per-group
// closeness centrality, high-centrality selection, and shared-trait
// aggregation.
type Analyzer struct {
	Predicate  *similarity.Predicate
	Aggregator *traits.Aggregator
	Multiplier float64
}

func NewAnalyzer(neighborThreshold int, multiplier float64) *Analyzer {
	if neighborThreshold <= 0 {
		neighborThreshold = similarity.DefaultNeighborThreshold
	}
	if multiplier <= 0 {
		multiplier = centrality.DefaultMultiplier
	}
	pred := &similarity.Predicate{NeighborThreshold: neighborThreshold}
	return &Analyzer{
		Predicate:  pred,
		Aggregator: traits.NewAggregator(pred),
		Multiplier: multiplier,
	}
}

// Run builds the similarity graph once over the full customer list, then
// analyzes each churn-status partition as a subset of node IDs. Connected-
// component segments are computed on the full graph.
func (a *Analyzer) Run(customers []model.Customer) model.AnalysisResult {
	g := custgraph.Build(customers, a.Predicate)

	var churned, existing []int64
	for i, c := range customers {
		if c.Churned() {
			churned = append(churned, int64(i))
		} else {
			existing = append(existing, int64(i))
		}
	}

	return model.AnalysisResult{
		RunID: uuid.New().String(),
		Groups: []model.GroupReport{
			a.analyzeGroup(g, ChurnGroupLabel, churned, customers),
			a.analyzeGroup(g, NotChurnGroupLabel, existing, customers),
		},
		Segments: segment.Detect(g),
	}
}

func (a *Analyzer) analyzeGroup(g *simple.UndirectedGraph, label string, subset []int64, customers []model.Customer) model.GroupReport {
	scores := centrality.Closeness(g, subset)
	selected := centrality.SelectHighCentrality(scores, a.Multiplier)
	tally := a.Aggregator.Aggregate(g, selected, customers)

	return model.GroupReport{
		Label:               label,
		HighCentralityNodes: selected,
		Categories:          traits.Breakdown(tally),
	}
}
