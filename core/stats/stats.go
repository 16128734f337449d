// Package stats derives read-only label statistics from extracted spans.
package stats

import (
	"sort"

	"github.com/siherrmann/annotator/model"
)

// LabelCount is one row of the statistics table
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Counts returns the number of occurrences of each label among the spans
func Counts(spans []model.Span) map[string]int {
	counts := make(map[string]int)
	for _, span := range spans {
		counts[span.Label]++
	}
	return counts
}

// SortedCounts returns the label counts sorted descending by count, with
// ties broken by the label's first appearance in the span sequence.
func SortedCounts(spans []model.Span) []LabelCount {
	counts := make(map[string]int)
	var order []string
	for _, span := range spans {
		if _, seen := counts[span.Label]; !seen {
			order = append(order, span.Label)
		}
		counts[span.Label]++
	}

	rows := make([]LabelCount, 0, len(order))
	for _, label := range order {
		rows = append(rows, LabelCount{Label: label, Count: counts[label]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return rows
}
