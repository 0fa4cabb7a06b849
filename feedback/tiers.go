package feedback

import (
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

type GrammarTier int

const (
	GrammarClean GrammarTier = iota
	GrammarMinor
	GrammarMany
)

func (t GrammarTier) String() string {
	switch t {
	case GrammarClean:
		return "clean"
	case GrammarMinor:
		return "minor"
	case GrammarMany:
		return "many"
	}
	return "unknown"
}

// GrammarTierOf buckets an error count: 0, 1–2, 3+.
func GrammarTierOf(errors int) GrammarTier {
	switch {
	case errors <= 0:
		return GrammarClean
	case errors <= 2:
		return GrammarMinor
	default:
		return GrammarMany
	}
}

type RelevanceTier int

const (
	RelevanceLow RelevanceTier = iota
	RelevanceModerate
	RelevanceHigh
)

func (t RelevanceTier) String() string {
	switch t {
	case RelevanceLow:
		return "low"
	case RelevanceModerate:
		return "moderate"
	case RelevanceHigh:
		return "high"
	}
	return "unknown"
}

// RelevanceTierOf: above 0.8 is high, above 0.5 moderate, anything else low.
// Shared by per-utterance judgments and speaker means.
func RelevanceTierOf(score float64) RelevanceTier {
	switch {
	case score > 0.8:
		return RelevanceHigh
	case score > 0.5:
		return RelevanceModerate
	default:
		return RelevanceLow
	}
}

// SentimentTierOf maps a provider label onto positive, negative or neutral.
// Any label outside that set, including an empty one, is treated as neutral.
// The second return reports whether the label was recognized.
func SentimentTierOf(label string) (string, bool) {
	switch l := strings.ToLower(strings.TrimSpace(label)); l {
	case debate.SentimentPositive, debate.SentimentNegative, debate.SentimentNeutral:
		return l, true
	default:
		return debate.SentimentNeutral, false
	}
}

type EmotionTier int

const (
	EmotionSteady EmotionTier = iota
	EmotionTense
	EmotionExpressive
	EmotionSubdued
)

func (t EmotionTier) String() string {
	switch t {
	case EmotionSteady:
		return "steady"
	case EmotionTense:
		return "tense"
	case EmotionExpressive:
		return "expressive"
	case EmotionSubdued:
		return "subdued"
	}
	return "unknown"
}

// EmotionTierOf groups emotion labels. fear, neutral and any unrecognized label
// land in the steady tier; the second return is false only for unrecognized labels.
func EmotionTierOf(label string) (EmotionTier, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case debate.EmotionAnger, debate.EmotionDisgust:
		return EmotionTense, true
	case debate.EmotionJoy, debate.EmotionSurprise:
		return EmotionExpressive, true
	case debate.EmotionSadness:
		return EmotionSubdued, true
	case debate.EmotionFear, debate.EmotionNeutral:
		return EmotionSteady, true
	default:
		return EmotionSteady, false
	}
}
