package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"

	"github.com/siherrmann/annotator/helper"
)

// LabelSet is the set of entity labels currently selected by the user.
// An empty set is valid and filters out every span.
type LabelSet map[string]struct{}

// NewLabelSet creates a label set containing the given labels
func NewLabelSet(labels ...string) LabelSet {
	set := make(LabelSet, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}

// Has reports whether the label is selected
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Add adds a label to the set
func (s LabelSet) Add(label string) {
	s[label] = struct{}{}
}

// Remove removes a label from the set
func (s LabelSet) Remove(label string) {
	delete(s, label)
}

// Toggle adds the label if it is missing and removes it if it is present
func (s LabelSet) Toggle(label string) {
	if s.Has(label) {
		delete(s, label)
	} else {
		s[label] = struct{}{}
	}
}

// Copy returns an independent copy of the set.
// Snapshots hold copies so later user changes never alter recorded sessions.
func (s LabelSet) Copy() LabelSet {
	copied := make(LabelSet, len(s))
	for label := range s {
		copied[label] = struct{}{}
	}
	return copied
}

// Labels returns the selected labels in sorted order
func (s LabelSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// MarshalJSON marshals the set as a sorted JSON array of labels
func (s LabelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Labels())
}

// UnmarshalJSON unmarshals a JSON array of labels into the set
func (s *LabelSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewLabelSet(labels...)
	return nil
}

// Value implements the driver.Valuer interface for database storage
func (s LabelSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for database retrieval
func (s *LabelSet) Scan(value interface{}) error {
	if value == nil {
		*s = LabelSet{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
	}

	return json.Unmarshal(b, s)
}
