package model

// Trait is a single "<category>: <value>" fact shared between two customers,
// e.g. "Card Type: Silver".
type Trait struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

func (t Trait) String() string {
	return t.Category + ": " + t.Value
}

// ValueBreakdown is one trait value within a category, with its share of the
// category total.
type ValueBreakdown struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown is one trait category with its share of the grand total.
type CategoryBreakdown struct {
	Category   string           `json:"category"`
	TotalCount int              `json:"total_count"`
	Percentage float64          `json:"percentage"`
	Values     []ValueBreakdown `json:"values"`
}

// GroupReport is the aggregated result for one churn-status partition.
type GroupReport struct {
	Label               string              `json:"label"`
	HighCentralityNodes []int64             `json:"high_centrality_nodes"`
	Categories          []CategoryBreakdown `json:"categories"`
}

// Segment is a set of customers forming one connected component of the
// similarity graph. Members are node IDs into the ingested customer list.
type Segment struct {
	Members []int64 `json:"members"`
	Size    int     `json:"size"`
}

// AnalysisResult is the output of one full pipeline run.
type AnalysisResult struct {
	RunID    string        `json:"run_id"`
	Groups   []GroupReport `json:"groups"`
	Segments []Segment     `json:"segments"`
}
