package feedback

import (
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// Engine builds the judgment text for a single utterance.
type Engine struct {
	picker Picker
}

// NewEngine panics on a nil picker.
func NewEngine(p Picker) *Engine {
	if p == nil {
		panic("feedback: nil picker")
	}
	return &Engine{picker: p}
}

// Judge draws one phrase per tier in the order grammar, relevance, sentiment, emotion,
// then an optional bonus phrase for high-relevance positive or low-relevance negative remarks.
func (e *Engine) Judge(s debate.SignalBundle) string {
	rel := RelevanceTierOf(s.Relevance)
	sentiment, _ := SentimentTierOf(s.Sentiment.Label)
	emotion, _ := EmotionTierOf(s.Emotion.Label)

	parts := []string{
		pick(e.picker, grammarPhrases[GrammarTierOf(s.Grammar.ErrorCount)]),
		pick(e.picker, relevancePhrases[rel]),
		pick(e.picker, sentimentPhrases[sentiment]),
		pick(e.picker, emotionPhrases[emotion]),
	}

	switch {
	case rel == RelevanceHigh && sentiment == debate.SentimentPositive:
		parts = append(parts, pick(e.picker, upliftingComboPhrases))
	case rel == RelevanceLow && sentiment == debate.SentimentNegative:
		parts = append(parts, pick(e.picker, disconnectedComboPhrases))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
