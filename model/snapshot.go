package model

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable record of one completed extraction: the source
// text, the spans left after filtering, a copy of the label selection that
// produced them, and the id of the model that ran.
// Snapshots are created once, appended to the session store and never
// mutated or removed.
type Snapshot struct {
	ID         int64     `json:"id"`
	RID        uuid.UUID `json:"rid"`
	SourceText string    `json:"source_text"`
	Entities   SpanList  `json:"entities"`
	Labels     LabelSet  `json:"labels"`
	ModelID    string    `json:"model_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewSnapshot creates a snapshot from the given extraction result.
// The entities and label set are copied so the snapshot does not alias
// live state.
func NewSnapshot(sourceText string, entities []Span, labels LabelSet, modelID string) *Snapshot {
	copied := make(SpanList, len(entities))
	copy(copied, entities)

	return &Snapshot{
		RID:        uuid.New(),
		SourceText: sourceText,
		Entities:   copied,
		Labels:     labels.Copy(),
		ModelID:    modelID,
		CreatedAt:  time.Now(),
	}
}

// Empty reports whether the snapshot holds no entities for the selected
// label types. This is a normal outcome, not an error.
func (s *Snapshot) Empty() bool {
	return len(s.Entities) == 0
}
