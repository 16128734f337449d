package export

import (
	"testing"

	"github.com/siherrmann/annotator/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	t.Run("Records use the contract field names", func(t *testing.T) {
		data, err := JSON([]model.Span{{Text: "Alice", Start: 0, End: 5, Label: "PERSON"}})

		require.NoError(t, err)
		assert.JSONEq(t, `[{"Text":"Alice","Start":0,"End":5,"Label":"PERSON"}]`, string(data))
	})

	t.Run("Nil spans marshal as empty array", func(t *testing.T) {
		data, err := JSON(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("Round-trip preserves tuples and order", func(t *testing.T) {
		spans := exportSpans()

		data, err := JSON(spans)
		require.NoError(t, err)

		parsed, err := ParseJSON(data)
		require.NoError(t, err)
		assert.Equal(t, spans, parsed)
	})
}
