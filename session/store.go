// Package session holds the in-memory record of completed extractions.
// The store is append-only for the lifetime of the process: snapshots are
// never mutated, merged or removed, and there is no size limit. Keeping it
// unbounded is a deliberate simplicity tradeoff, not an oversight.
package session

import (
	"sync"

	"github.com/siherrmann/annotator/model"
)

// Store is an ordered, append-only collection of session snapshots
type Store struct {
	mu        sync.RWMutex
	snapshots []*model.Snapshot
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{}
}

// Record constructs an immutable snapshot from the extraction result,
// appends it and returns it. The label set is copied so later changes to
// the live selection never alter the recorded session.
func (s *Store) Record(sourceText string, entities []model.Span, labels model.LabelSet, modelID string) *model.Snapshot {
	snapshot := model.NewSnapshot(sourceText, entities, labels, modelID)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot.ID = int64(len(s.snapshots) + 1)
	s.snapshots = append(s.snapshots, snapshot)

	return snapshot
}

// NewestFirst returns the snapshots in reverse insertion order. The returned
// slice is a copy; reading it never affects the store.
func (s *Store) NewestFirst() []*model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listed := make([]*model.Snapshot, len(s.snapshots))
	for i, snapshot := range s.snapshots {
		listed[len(s.snapshots)-1-i] = snapshot
	}
	return listed
}

// Recall exposes a snapshot's text and label set so a caller can restore
// them as the current input configuration. Recall is read-only replay: the
// snapshot stays in the store untouched, and the returned label set is a
// copy the caller may mutate freely.
func (s *Store) Recall(snapshot *model.Snapshot) (string, model.LabelSet) {
	return snapshot.SourceText, snapshot.Labels.Copy()
}

// Len returns the number of recorded snapshots
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
