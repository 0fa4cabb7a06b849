package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

var (
	errDimensionMismatch = errors.New("embedding dimension mismatch")
	errNonFinite         = errors.New("embedding has non-finite similarity")
)

// RelevanceScorer compares utterance embeddings to a single topic embedding.
type RelevanceScorer struct {
	embedder TextEmbedder
}

func NewRelevanceScorer(e TextEmbedder) *RelevanceScorer {
	return &RelevanceScorer{embedder: e}
}

// ResolveTopicEmbedding embeds the explicit topic as given when it has non-space content. Otherwise it embeds
// every utterance's text joined by single spaces, so relevance measures closeness to the whole debate.
func (r *RelevanceScorer) ResolveTopicEmbedding(ctx context.Context, utts []debate.Utterance, topic string) ([]float64, debate.TopicSource, error) {
	src := debate.TopicExplicit
	text := topic
	if strings.TrimSpace(topic) == "" {
		if len(utts) == 0 {
			return nil, "", &debate.InputError{Position: -1, Err: debate.ErrEmptyTranscript}
		}
		src = debate.TopicTranscript
		parts := make([]string, len(utts))
		for i, u := range utts {
			parts[i] = u.Text
		}
		text = strings.Join(parts, " ")
	}

	vec, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, "", &debate.ProviderError{Position: -1, Capability: debate.CapEmbedding, Err: err}
	}
	return vec, src, nil
}

// Score is the cosine similarity of the two vectors rounded to 3 decimals.
// A zero vector scores 0. Both vectors are brought to unit length before the
// dot product so any magnitude the embedder returns stays in [-1,1].
func (r *RelevanceScorer) Score(utterance, topic []float64) (float64, error) {
	if len(utterance) != len(topic) {
		return 0, fmt.Errorf("%w: utterance %d, topic %d", errDimensionMismatch, len(utterance), len(topic))
	}
	na, nb := floats.Norm(utterance, 2), floats.Norm(topic, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	cos := floats.Dot(unit(utterance, na), unit(topic, nb))
	if math.IsNaN(cos) || math.IsInf(cos, 0) {
		return 0, errNonFinite
	}
	cos = math.Max(-1, math.Min(1, cos))
	return round3(cos), nil
}

// unit divides v by its norm n; dividing each element keeps tiny norms from overflowing a reciprocal.
func unit(v []float64, n float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
