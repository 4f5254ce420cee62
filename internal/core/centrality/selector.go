package centrality

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultMultiplier is the design-default high-centrality threshold factor.
const DefaultMultiplier = 1.1

// SelectHighCentrality returns the nodes whose centrality is strictly above
// multiplier times the mean centrality, in ascending node order. An empty
// map yields an empty result; if every node scores the same, none clears the
// strict threshold.
func SelectHighCentrality(centrality map[int64]float64, multiplier float64) []int64 {
	if len(centrality) == 0 {
		return nil
	}
	values := make([]float64, 0, len(centrality))
	for _, c := range centrality {
		values = append(values, c)
	}
	threshold := multiplier * stat.Mean(values, nil)

	var selected []int64
	for node, c := range centrality {
		if c > threshold {
			selected = append(selected, node)
		}
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}
