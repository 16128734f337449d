package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/siherrmann/annotator/helper"
)

// Span represents one recognized entity mention in a source text.
// Start and End are byte offsets into the source text, End exclusive,
// with 0 <= Start < End <= len(source text).
// The JSON field names are part of the export contract and must stay
// exactly Text, Start, End, Label.
type Span struct {
	Text  string `json:"Text"`
	Start int    `json:"Start"`
	End   int    `json:"End"`
	Label string `json:"Label"`
}

// SpanList represents an ordered list of spans stored as JSONB in PostgreSQL
type SpanList []Span

// Value implements the driver.Valuer interface for database storage
func (s SpanList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]Span{})
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for database retrieval
func (s *SpanList) Scan(value interface{}) error {
	if value == nil {
		*s = SpanList{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
	}

	return json.Unmarshal(b, s)
}
