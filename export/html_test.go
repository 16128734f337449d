package export

import (
	"strings"
	"testing"

	"github.com/siherrmann/annotator/model"
	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	text := "Alice works at Acme Corp in Paris."
	colors := map[string]string{
		"PERSON": "linear-gradient(90deg, #7ee7f2, #0f62fe)",
		"GPE":    "linear-gradient(90deg, #90be6d, #43aa8b)",
	}

	t.Run("Wraps spans in colored marks", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Alice", Start: 0, End: 5, Label: "PERSON"},
			{Text: "Paris", Start: 28, End: 33, Label: "GPE"},
		}

		html := Highlight(text, spans, colors)

		assert.Contains(t, html, ">Alice<")
		assert.Contains(t, html, ">Paris<")
		assert.Contains(t, html, "PERSON")
		assert.Contains(t, html, colors["PERSON"])
		assert.Contains(t, html, colors["GPE"])
		assert.Equal(t, 2, strings.Count(html, "<mark"))
		assert.Contains(t, html, " works at Acme Corp in ", "Expected unmarked text to survive between spans")
	})

	t.Run("No spans renders plain escaped text", func(t *testing.T) {
		html := Highlight("a < b & c", nil, colors)

		assert.NotContains(t, html, "<mark")
		assert.Contains(t, html, "a &lt; b &amp; c")
	})

	t.Run("Span text is HTML escaped", func(t *testing.T) {
		spans := []model.Span{{Text: "<script>", Start: 0, End: 8, Label: "ORG"}}

		html := Highlight("<script> is not a company", spans, colors)

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("Unknown label gets the fallback background", func(t *testing.T) {
		spans := []model.Span{{Text: "Alice", Start: 0, End: 5, Label: "SOMETHING"}}

		html := Highlight(text, spans, colors)

		assert.Contains(t, html, "#dddddd")
	})

	t.Run("Out of bounds spans are skipped", func(t *testing.T) {
		spans := []model.Span{{Text: "ghost", Start: 100, End: 105, Label: "PERSON"}}

		html := Highlight(text, spans, colors)

		assert.NotContains(t, html, "<mark")
	})

	t.Run("Overlapping span is skipped", func(t *testing.T) {
		spans := []model.Span{
			{Text: "Alice", Start: 0, End: 5, Label: "PERSON"},
			{Text: "lice", Start: 1, End: 5, Label: "PERSON"},
		}

		html := Highlight(text, spans, colors)

		assert.Equal(t, 1, strings.Count(html, "<mark"))
	})
}

func TestHighlightPage(t *testing.T) {
	t.Run("Produces a standalone document", func(t *testing.T) {
		html := HighlightPage("My Session", "Alice", []model.Span{{Text: "Alice", Start: 0, End: 5, Label: "PERSON"}}, model.DefaultColors)

		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.Contains(t, html, "<title>My Session</title>")
		assert.Contains(t, html, "<mark")
	})
}
