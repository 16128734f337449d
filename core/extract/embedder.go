package extract

import (
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/siherrmann/annotator/helper"
)

// EmbeddingDimensions is the vector size the session archive stores;
// the sessions table is declared with this dimension.
const EmbeddingDimensions = 384

// Embedder turns text into a fixed-size vector. The session archive embeds
// snapshot source texts with it so past sessions can be found by similarity.
type Embedder interface {
	Embed(text string) ([]float32, error)
	Close() error
}

// hugotEmbedder runs a feature extraction pipeline on a sentence
// transformer model
type hugotEmbedder struct {
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
}

// NewHugotEmbedder creates an embedder backed by the all-MiniLM-L6-v2
// sentence transformer, downloading the model on first use. Its vectors
// have EmbeddingDimensions entries.
func NewHugotEmbedder() (Embedder, error) {
	modelPath, err := helper.PrepareModel("sentence-transformers/all-MiniLM-L6-v2", "onnx/model.onnx")
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	config := hugot.FeatureExtractionConfig{
		ModelPath: modelPath,
		Name:      "embedder-pipeline",
	}
	embeddingPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create embedding pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create embedding pipeline: %w", err)
	}

	return &hugotEmbedder{
		session:  session,
		pipeline: embeddingPipeline,
	}, nil
}

// Embed returns the embedding vector for the text
func (e *hugotEmbedder) Embed(text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	result, err := e.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embedding generated")
	}

	return result.Embeddings[0], nil
}

// Close destroys the hugot session and the loaded model
func (e *hugotEmbedder) Close() error {
	if e.session != nil {
		return e.session.Destroy()
	}
	return nil
}
