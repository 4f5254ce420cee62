package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/churnlens/churnlens/internal/core/model"
)

// SortCategories orders categories by name and values by value name, in
// place. The aggregator's maps carry no order; determinism is imposed here,
// at the presentation boundary.
func SortCategories(categories []model.CategoryBreakdown) {
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})
	for i := range categories {
		values := categories[i].Values
		sort.Slice(values, func(a, b int) bool { return values[a].Value < values[b].Value })
	}
}

// Render writes the full textual report for an analysis run.
func Render(w io.Writer, result model.AnalysisResult) {
	for _, group := range result.Groups {
		RenderGroup(w, group)
	}
	renderSegments(w, result.Segments)
}

// RenderGroup writes one churn-status group: the high-centrality node list
// (or a notice that none exist) followed by the category breakdown.
func RenderGroup(w io.Writer, group model.GroupReport) {
	fmt.Fprintf(w, "%s High Centrality Nodes:\n", group.Label)
	if len(group.HighCentralityNodes) == 0 {
		fmt.Fprintln(w, "No high centrality nodes.")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "Nodes: %v\n", group.HighCentralityNodes)

	fmt.Fprintln(w, "Prevalent characteristic categories and their compositions:")
	SortCategories(group.Categories)
	for _, cat := range group.Categories {
		fmt.Fprintf(w, "%s, (Total Count: %d - %v%%)\n", cat.Category, cat.TotalCount, cat.Percentage)
		for _, val := range cat.Values {
			fmt.Fprintf(w, "  %s: %d (%v%%)\n", val.Value, val.Count, val.Percentage)
		}
	}
	fmt.Fprintln(w)
}

func renderSegments(w io.Writer, segments []model.Segment) {
	if len(segments) == 0 {
		return
	}
	fmt.Fprintln(w, "Customer segments (connected components):")
	for i, s := range segments {
		fmt.Fprintf(w, "  Segment %d: %d customers\n", i+1, s.Size)
	}
	fmt.Fprintln(w)
}
