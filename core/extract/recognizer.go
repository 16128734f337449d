package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/siherrmann/annotator/helper"
	"github.com/siherrmann/annotator/model"
)

// Recognizer runs named entity recognition over a text. Any NLP backend that
// can return labeled spans with start and end offsets is substitutable here.
type Recognizer interface {
	ModelID() string
	Recognize(ctx context.Context, text string) ([]model.Span, error)
	Close() error
}

// hugotRecognizer runs a token classification pipeline on an ONNX NER model
type hugotRecognizer struct {
	modelID  string
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewHugotRecognizer creates a recognizer for a known model id, downloading
// the model on first use. The returned recognizer holds the loaded model for
// the lifetime of the process; use the Registry to share it between requests.
func NewHugotRecognizer(modelID string) (Recognizer, error) {
	source, ok := KnownModels[modelID]
	if !ok {
		return nil, fmt.Errorf("unknown model id %q", modelID)
	}

	// Prepare model (download if needed)
	modelPath, err := helper.PrepareModel(source.Repo, source.OnnxFilePath)
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	// Create token classification pipeline for NER
	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-" + modelID,
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}), // Ignore non-entity tokens
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	return &hugotRecognizer{
		modelID:  modelID,
		session:  session,
		pipeline: nerPipeline,
	}, nil
}

// ModelID returns the id of the loaded model
func (r *hugotRecognizer) ModelID() string {
	return r.modelID
}

// Recognize runs NER on the text and returns the recognized spans in the
// order the model emits them, which is ascending start offset.
func (r *hugotRecognizer) Recognize(ctx context.Context, text string) ([]model.Span, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	result, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to run NER: %w", err)
	}

	if len(result.Entities) == 0 {
		return nil, nil
	}

	spans := make([]model.Span, 0, len(result.Entities[0]))
	for _, entity := range result.Entities[0] {
		spans = append(spans, model.Span{
			Text:  strings.TrimSpace(entity.Word),
			Start: int(entity.Start),
			End:   int(entity.End),
			Label: CanonicalLabel(entity.Entity),
		})
	}

	return spans, nil
}

// Close destroys the hugot session and the loaded model
func (r *hugotRecognizer) Close() error {
	if r.session != nil {
		return r.session.Destroy()
	}
	return nil
}

// conllAliases maps CoNLL-style model labels to the display vocabulary
var conllAliases = map[string]string{
	"PER": "PERSON",
}

// CanonicalLabel strips BIO tagging prefixes (B- for beginning, I- for
// inside) and maps model label aliases onto the display vocabulary.
func CanonicalLabel(label string) string {
	if strings.HasPrefix(label, "B-") || strings.HasPrefix(label, "I-") {
		label = label[2:]
	}
	if alias, ok := conllAliases[label]; ok {
		return alias
	}
	return label
}
