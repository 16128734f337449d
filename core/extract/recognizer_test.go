package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"B-PER", "PERSON"},
		{"I-PER", "PERSON"},
		{"PER", "PERSON"},
		{"B-LOC", "LOC"},
		{"I-LOC", "LOC"},
		{"B-ORG", "ORG"},
		{"I-ORG", "ORG"},
		{"B-MISC", "MISC"},
		{"MISC", "MISC"},
		{"O", "O"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalLabel(tt.input))
		})
	}
}

func TestNewHugotRecognizer(t *testing.T) {
	t.Run("Unknown model id fails without loading anything", func(t *testing.T) {
		recognizer, err := NewHugotRecognizer("no-such-model")

		require.Error(t, err)
		assert.Nil(t, recognizer)
		assert.Contains(t, err.Error(), "unknown model id")
	})

	// Note: the following tests use hugot and will download the
	// distilbert-NER model if not already present
	t.Run("Recognize entities in text", func(t *testing.T) {
		recognizer, err := NewHugotRecognizer(ModelDistilbertNER)
		require.NoError(t, err)
		defer recognizer.Close()

		spans, err := recognizer.Recognize(context.Background(), "My name is Wolfgang and I live in Berlin.")
		require.NoError(t, err)

		t.Logf("Detected %d spans:", len(spans))
		for _, span := range spans {
			t.Logf("  - %s (%s) [%d:%d]", span.Text, span.Label, span.Start, span.End)
		}

		// Spans must come back in ascending start order
		for i := 1; i < len(spans); i++ {
			assert.GreaterOrEqual(t, spans[i].Start, spans[i-1].Start,
				"Expected spans ordered by first appearance in the text")
		}
		for _, span := range spans {
			assert.Less(t, span.Start, span.End, "Expected start < end for every span")
		}
	})

	t.Run("Empty text yields no spans", func(t *testing.T) {
		recognizer, err := NewHugotRecognizer(ModelDistilbertNER)
		require.NoError(t, err)
		defer recognizer.Close()

		spans, err := recognizer.Recognize(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, spans)
	})

	t.Run("Cancelled context aborts recognition", func(t *testing.T) {
		recognizer, err := NewHugotRecognizer(ModelDistilbertNER)
		require.NoError(t, err)
		defer recognizer.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = recognizer.Recognize(ctx, "Some text")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
