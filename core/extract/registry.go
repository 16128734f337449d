package extract

import (
	"errors"
	"fmt"
	"sync"
)

// ErrModelUnavailable marks a model that could not be loaded. Extraction for
// the request is aborted and surfaced to the user; there is no automatic
// fallback to a different model and no retry without a new user action.
var ErrModelUnavailable = errors.New("model unavailable")

// Model ids selectable by the user
const (
	ModelDistilbertNER = "distilbert-ner"
	ModelBertBaseNER   = "bert-base-ner"
)

// ModelSource describes where a model id resolves to on Hugging Face
type ModelSource struct {
	Repo         string
	OnnxFilePath string
}

// KnownModels maps the enumerated model ids to their sources
var KnownModels = map[string]ModelSource{
	ModelDistilbertNER: {Repo: "KnightsAnalytics/distilbert-NER", OnnxFilePath: "model.onnx"},
	ModelBertBaseNER:   {Repo: "dslim/bert-base-NER", OnnxFilePath: "onnx/model.onnx"},
}

// Factory creates a recognizer for a model id
type Factory func(modelID string) (Recognizer, error)

// Registry caches loaded recognizers keyed by model id. Loading is
// idempotent: a model id is loaded at most once per process, concurrent
// loads for the same id share one load, and a failed load is cached so the
// failure is reported without repeating the expensive load attempt.
type Registry struct {
	mu      sync.Mutex
	factory Factory
	entries map[string]*registryEntry
}

type registryEntry struct {
	once       sync.Once
	recognizer Recognizer
	err        error
}

// NewRegistry creates a registry backed by the hugot recognizer
func NewRegistry() *Registry {
	return NewRegistryWithFactory(NewHugotRecognizer)
}

// NewRegistryWithFactory creates a registry with a custom recognizer factory
func NewRegistryWithFactory(factory Factory) *Registry {
	return &Registry{
		factory: factory,
		entries: map[string]*registryEntry{},
	}
}

// Load returns the cached recognizer for the model id, loading it on first
// use. A load failure wraps ErrModelUnavailable.
func (r *Registry) Load(modelID string) (Recognizer, error) {
	r.mu.Lock()
	entry, ok := r.entries[modelID]
	if !ok {
		entry = &registryEntry{}
		r.entries[modelID] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		entry.recognizer, entry.err = r.factory(modelID)
	})

	if entry.err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelUnavailable, modelID, entry.err)
	}

	return entry.recognizer, nil
}

// Close closes every loaded recognizer
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for modelID, entry := range r.entries {
		if entry.recognizer == nil {
			continue
		}
		if err := entry.recognizer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", modelID, err))
		}
	}
	r.entries = map[string]*registryEntry{}

	return errors.Join(errs...)
}
