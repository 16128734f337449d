package annotator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/siherrmann/annotator/core/acquire"
	"github.com/siherrmann/annotator/core/extract"
	"github.com/siherrmann/annotator/database"
	"github.com/siherrmann/annotator/export"
	"github.com/siherrmann/annotator/helper"
	"github.com/siherrmann/annotator/model"
	"github.com/siherrmann/annotator/session"
	loadSql "github.com/siherrmann/annotator/sql"
)

// Annotator holds the application state of an annotation surface: the live
// label selection, the active model, the model registry and the session
// store. All state lives in this struct, nothing is global.
type Annotator struct {
	Registry *extract.Registry
	Store    *session.Store
	Colors   map[string]string
	// Optional Postgres archive, attached via AttachArchive
	DB      *helper.Database
	Archive *database.SessionsDBHandler
	// Live selection state and the lazily created embedder, guarded by mu
	mu          sync.RWMutex
	labels      model.LabelSet
	modelID     string
	embed       extract.Embedder
	newEmbedder func() (extract.Embedder, error)
	// Logging
	log *slog.Logger
}

// New creates a new Annotator with the default model registry, an empty
// session store, all known labels selected and the default model active
func New() *Annotator {
	return newAnnotator(extract.NewRegistry())
}

// NewWithRegistry creates an Annotator with a custom model registry.
// Mainly useful for tests that inject fake recognizers.
func NewWithRegistry(registry *extract.Registry) *Annotator {
	return newAnnotator(registry)
}

func newAnnotator(registry *extract.Registry) *Annotator {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	return &Annotator{
		Registry:    registry,
		Store:       session.NewStore(),
		Colors:      model.DefaultColors,
		labels:      model.NewLabelSet(model.DefaultVocabulary...),
		modelID:     extract.ModelDistilbertNER,
		newEmbedder: extract.NewHugotEmbedder,
		log:         logger,
	}
}

// SetModel switches the active model. The model is loaded lazily on the
// next Annotate call.
func (a *Annotator) SetModel(modelID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modelID = modelID
}

// Model returns the id of the active model
func (a *Annotator) Model() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.modelID
}

// ToggleLabel adds the label to the live selection if it is missing and
// removes it if it is present
func (a *Annotator) ToggleLabel(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.labels.Toggle(label)
}

// SelectLabels replaces the live selection with exactly the given labels.
// Selecting none is valid and makes every following run come up empty.
func (a *Annotator) SelectLabels(labels ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.labels = model.NewLabelSet(labels...)
}

// SelectAllLabels selects every label in the default vocabulary
func (a *Annotator) SelectAllLabels() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.labels = model.NewLabelSet(model.DefaultVocabulary...)
}

// Labels returns a copy of the live label selection
func (a *Annotator) Labels() model.LabelSet {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.labels.Copy()
}

// Annotate runs the active model against the text, filters the result by
// the live label selection and records the outcome as a new session
// snapshot. Snapshots are recorded even when no entities survive the
// filter, so a run with an empty selection still shows up in the session
// list.
func (a *Annotator) Annotate(ctx context.Context, text string) (*model.Snapshot, error) {
	a.mu.RLock()
	modelID := a.modelID
	allowed := a.labels.Copy()
	a.mu.RUnlock()

	recognizer, err := a.Registry.Load(modelID)
	if err != nil {
		return nil, helper.NewError("load model", err)
	}

	spans, err := recognizer.Recognize(ctx, text)
	if err != nil {
		return nil, helper.NewError("recognize entities", err)
	}

	filtered := extract.Filter(spans, allowed)
	snapshot := a.Store.Record(text, filtered, allowed, modelID)

	if len(filtered) == 0 {
		a.log.Warn("No entities for selected types", "model", modelID)
	} else {
		a.log.Info("Recorded annotation session", "model", modelID, "entities", len(filtered))
	}

	return snapshot, nil
}

// AnnotateFile extracts text from the file content based on its filename
// extension and annotates it. Extraction failures are not errors; the
// placeholder text produced by the acquire package is annotated instead,
// matching what a user would see in the text area.
func (a *Annotator) AnnotateFile(ctx context.Context, filename string, data []byte) (*model.Snapshot, error) {
	text := acquire.FromFile(filename, data)
	return a.Annotate(ctx, text)
}

// Sessions returns all recorded snapshots, newest first
func (a *Annotator) Sessions() []*model.Snapshot {
	return a.Store.NewestFirst()
}

// RecallSession loads a past snapshot back into the live state: the label
// selection becomes a copy of the snapshot's and the source text is
// returned for the editing surface. The snapshot itself stays untouched.
func (a *Annotator) RecallSession(snapshot *model.Snapshot) string {
	text, labels := a.Store.Recall(snapshot)

	a.mu.Lock()
	a.labels = labels
	a.mu.Unlock()

	return text
}

// Highlight renders the snapshot as an HTML fragment with entity marks
func (a *Annotator) Highlight(snapshot *model.Snapshot) string {
	return export.Highlight(snapshot.SourceText, snapshot.Entities, a.Colors)
}

// AttachArchive connects the annotator to a Postgres database and
// initializes the session archive handler. The embedder for similar-session
// search is created lazily on the first archive write or search.
func (a *Annotator) AttachArchive(config *helper.DatabaseConfiguration) error {
	db := helper.NewDatabase("annotator", config, a.log)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	archive, err := database.NewSessionsDBHandler(db, false)
	if err != nil {
		return helper.NewError("create sessions handler", err)
	}

	a.DB = db
	a.Archive = archive
	return nil
}

// ArchiveSnapshot persists a snapshot to the attached archive, embedding its
// source text so it can be found by SearchSessions later. The recorded
// snapshot itself is never modified; the archive keeps its own copy.
func (a *Annotator) ArchiveSnapshot(snapshot *model.Snapshot) error {
	if a.Archive == nil {
		return helper.NewError("archive snapshot", fmt.Errorf("no archive attached, use AttachArchive() first"))
	}

	embed, err := a.embedder()
	if err != nil {
		return helper.NewError("create embedder", err)
	}

	embedding, err := embed.Embed(snapshot.SourceText)
	if err != nil {
		return helper.NewError("embed source text", err)
	}

	_, err = a.Archive.InsertSession(snapshot, embedding)
	return err
}

// SearchSessions finds archived snapshots whose source text is most similar
// to the query, up to topK results
func (a *Annotator) SearchSessions(query string, topK int) ([]*database.SimilarSession, error) {
	if a.Archive == nil {
		return nil, helper.NewError("search sessions", fmt.Errorf("no archive attached, use AttachArchive() first"))
	}

	embed, err := a.embedder()
	if err != nil {
		return nil, helper.NewError("create embedder", err)
	}

	embedding, err := embed.Embed(query)
	if err != nil {
		return nil, helper.NewError("embed query", err)
	}

	return a.Archive.SelectSessionsBySimilarity(embedding, topK)
}

// embedder returns the shared embedder, creating it on first use.
// The lock makes concurrent callers share a single load.
func (a *Annotator) embedder() (extract.Embedder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.embed != nil {
		return a.embed, nil
	}

	embed, err := a.newEmbedder()
	if err != nil {
		return nil, err
	}

	a.embed = embed
	return a.embed, nil
}

// Close releases all loaded models, the embedder if one was created and the
// database connection if attached
func (a *Annotator) Close() error {
	err := a.Registry.Close()
	if err != nil {
		return helper.NewError("close registry", err)
	}

	a.mu.Lock()
	embed := a.embed
	a.embed = nil
	a.mu.Unlock()
	if embed != nil {
		if err := embed.Close(); err != nil {
			return helper.NewError("close embedder", err)
		}
	}

	if a.DB != nil && a.DB.Instance != nil {
		return a.DB.Close()
	}
	return nil
}
