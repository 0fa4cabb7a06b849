package orchestrator

import (
	"context"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// SentimentClassifier returns a lower-case positive/negative/neutral label with a 0..1 score.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (debate.Label, error)
}

// EmotionClassifier returns a lower-case emotion label with a 0..1 score.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (debate.Label, error)
}

// TextEmbedder returns a fixed-dimension vector. One instance serves a whole run.
type TextEmbedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GrammarChecker returns the corrected text and the number of token-level edits.
type GrammarChecker interface {
	Check(ctx context.Context, text string) (debate.Grammar, error)
}

// Providers is the set of capabilities a run needs. All four are required.
type Providers struct {
	Sentiment SentimentClassifier
	Emotion   EmotionClassifier
	Embedder  TextEmbedder
	Grammar   GrammarChecker
}

// Transcript is a parsed transcript plus the optional explicit topic.
type Transcript struct {
	Topic      string
	Utterances []debate.Utterance
}
