package stats

import (
	"testing"

	"github.com/siherrmann/annotator/model"
	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	t.Run("Counts occurrences per label", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Alice", Start: 0, End: 5, Label: "PERSON"},
			{Text: "Paris", Start: 28, End: 33, Label: "GPE"},
		}

		counts := Counts(spans)

		assert.Equal(t, map[string]int{"PERSON": 1, "GPE": 1}, counts)
	})

	t.Run("Repeated labels accumulate", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Alice", Label: "PERSON"},
			{Text: "Bob", Label: "PERSON"},
			{Text: "Acme", Label: "ORG"},
		}

		counts := Counts(spans)

		assert.Equal(t, 2, counts["PERSON"])
		assert.Equal(t, 1, counts["ORG"])
	})

	t.Run("No spans yields empty counts", func(t *testing.T) {
		assert.Empty(t, Counts(nil))
	})
}

func TestSortedCounts(t *testing.T) {
	t.Run("Sorted descending by count", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Acme", Label: "ORG"},
			{Text: "Alice", Label: "PERSON"},
			{Text: "Bob", Label: "PERSON"},
			{Text: "Carol", Label: "PERSON"},
			{Text: "Globex", Label: "ORG"},
		}

		rows := SortedCounts(spans)

		assert.Equal(t, []LabelCount{
			{Label: "PERSON", Count: 3},
			{Label: "ORG", Count: 2},
		}, rows)
	})

	t.Run("Ties broken by first appearance order", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Paris", Label: "GPE"},
			{Text: "Alice", Label: "PERSON"},
			{Text: "Berlin", Label: "GPE"},
			{Text: "Bob", Label: "PERSON"},
			{Text: "Acme", Label: "ORG"},
		}

		rows := SortedCounts(spans)

		assert.Equal(t, []LabelCount{
			{Label: "GPE", Count: 2},
			{Label: "PERSON", Count: 2},
			{Label: "ORG", Count: 1},
		}, rows, "Expected GPE before PERSON because it appears first in the input")
	})

	t.Run("No spans yields no rows", func(t *testing.T) {
		assert.Empty(t, SortedCounts(nil))
	})
}
