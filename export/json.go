package export

import (
	"encoding/json"

	"github.com/siherrmann/annotator/model"
)

// JSON marshals the spans as a JSON array of records with the fields
// Text, Start, End, Label. An empty span list marshals as [] and never null.
func JSON(spans []model.Span) ([]byte, error) {
	if spans == nil {
		spans = []model.Span{}
	}
	return json.Marshal(spans)
}

// ParseJSON parses a JSON export back into spans
func ParseJSON(data []byte) ([]model.Span, error) {
	var spans []model.Span
	if err := json.Unmarshal(data, &spans); err != nil {
		return nil, err
	}
	return spans, nil
}
