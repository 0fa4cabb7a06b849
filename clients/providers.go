package clients

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/heuristic"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

var (
	errIncomplete   = errors.New("response missing field")
	errInvalidValue = errors.New("response value out of range")
)

// ServiceURLs locates the HTTP model services.
type ServiceURLs struct {
	Sentiment      string
	Emotion        string
	Embedding      string
	EmbeddingModel string
	Grammar        string
}

// Providers adapts the HTTP services to the pipeline's capability interfaces.
func (h *HTTP) Providers(u ServiceURLs) orchestrator.Providers {
	return orchestrator.Providers{
		Sentiment: SentimentService{HTTP: h, URL: u.Sentiment},
		Emotion:   EmotionService{HTTP: h, URL: u.Emotion},
		Embedder:  EmbeddingService{HTTP: h, URL: u.Embedding, Model: u.EmbeddingModel},
		Grammar:   GrammarService{HTTP: h, URL: u.Grammar},
	}
}

type SentimentService struct {
	HTTP *HTTP
	URL  string
}

func (s SentimentService) Classify(ctx context.Context, text string) (debate.Label, error) {
	r, err := s.HTTP.Sentiment(ctx, s.URL, text)
	if err != nil {
		return debate.Label{}, err
	}
	if strings.TrimSpace(r.Label) == "" {
		return debate.Label{}, fmt.Errorf("sentiment %w: label", errIncomplete)
	}
	if r.Score == nil {
		return debate.Label{}, fmt.Errorf("sentiment %w: score", errIncomplete)
	}
	score, err := checkScore(*r.Score)
	if err != nil {
		return debate.Label{}, fmt.Errorf("sentiment: %w", err)
	}
	return debate.Label{Label: NormalizeSentiment(r.Label), Score: score}, nil
}

type EmotionService struct {
	HTTP *HTTP
	URL  string
}

func (s EmotionService) Classify(ctx context.Context, text string) (debate.Label, error) {
	r, err := s.HTTP.Emotion(ctx, s.URL, text)
	if err != nil {
		return debate.Label{}, err
	}
	top, err := r.Top()
	if err != nil {
		return debate.Label{}, err
	}
	if top.Score, err = checkScore(top.Score); err != nil {
		return debate.Label{}, fmt.Errorf("emotion: %w", err)
	}
	return top, nil
}

type EmbeddingService struct {
	HTTP  *HTTP
	URL   string
	Model string
}

func (s EmbeddingService) Embed(ctx context.Context, text string) ([]float64, error) {
	return s.HTTP.Embedding(ctx, s.URL, s.Model, text)
}

// GrammarService asks the corrector for a rewrite and counts token-level edits locally.
type GrammarService struct {
	HTTP *HTTP
	URL  string
}

func (s GrammarService) Check(ctx context.Context, text string) (debate.Grammar, error) {
	r, err := s.HTTP.Grammar(ctx, s.URL, text)
	if err != nil {
		return debate.Grammar{}, err
	}
	if r.CorrectedText == nil {
		return debate.Grammar{}, fmt.Errorf("grammar %w: corrected_text", errIncomplete)
	}
	return debate.Grammar{
		ErrorCount:    heuristic.TokenDivergence(text, *r.CorrectedText),
		CorrectedText: *r.CorrectedText,
	}, nil
}

// checkScore rejects non-finite confidences and clamps the rest to [0,1].
func checkScore(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: score %v", errInvalidValue, v)
	}
	return math.Max(0, math.Min(1, v)), nil
}
