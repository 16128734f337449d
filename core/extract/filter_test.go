package extract

import (
	"testing"

	"github.com/siherrmann/annotator/model"
	"github.com/stretchr/testify/assert"
)

func sampleSpans() []model.Span {
	return []model.Span{
		{Text: "Alice", Start: 0, End: 5, Label: "PERSON"},
		{Text: "Acme Corp", Start: 15, End: 24, Label: "ORG"},
		{Text: "Paris", Start: 28, End: 33, Label: "GPE"},
	}
}

func TestFilter(t *testing.T) {
	t.Run("Keeps only spans with selected labels in original order", func(t *testing.T) {
		allowed := model.NewLabelSet("PERSON", "GPE")

		filtered := Filter(sampleSpans(), allowed)

		assert.Equal(t, []model.Span{
			{Text: "Alice", Start: 0, End: 5, Label: "PERSON"},
			{Text: "Paris", Start: 28, End: 33, Label: "GPE"},
		}, filtered)
	})

	t.Run("Full selection keeps everything", func(t *testing.T) {
		allowed := model.NewLabelSet("PERSON", "ORG", "GPE")

		filtered := Filter(sampleSpans(), allowed)

		assert.Equal(t, sampleSpans(), filtered)
		assert.LessOrEqual(t, len(filtered), len(sampleSpans()))
	})

	t.Run("Empty selection yields empty result not an error", func(t *testing.T) {
		filtered := Filter(sampleSpans(), model.NewLabelSet())

		assert.Empty(t, filtered, "Expected no spans for empty label selection")
	})

	t.Run("Unknown selected labels never match", func(t *testing.T) {
		allowed := model.NewLabelSet("SOMETHING_ELSE")

		filtered := Filter(sampleSpans(), allowed)

		assert.Empty(t, filtered)
	})

	t.Run("Empty input yields empty result", func(t *testing.T) {
		filtered := Filter(nil, model.NewLabelSet("PERSON"))

		assert.Empty(t, filtered)
	})

	t.Run("Does not mutate the input", func(t *testing.T) {
		spans := sampleSpans()

		Filter(spans, model.NewLabelSet("ORG"))

		assert.Equal(t, sampleSpans(), spans, "Expected filter to leave the input untouched")
	})
}
