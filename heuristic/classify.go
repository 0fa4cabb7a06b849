package heuristic

import (
	"context"
	"sort"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// Sentiment counts lexicon hits; a negator flips the polarity of the word right after it.
type Sentiment struct{}

func (Sentiment) Classify(_ context.Context, text string) (debate.Label, error) {
	pos, neg := 0, 0
	negate := false
	for _, w := range words(text) {
		if negators[w] {
			negate = true
			continue
		}
		hit := 0
		switch {
		case positiveWords[w]:
			hit = 1
		case negativeWords[w]:
			hit = -1
		}
		if negate {
			hit = -hit
			negate = false
		}
		switch hit {
		case 1:
			pos++
		case -1:
			neg++
		}
	}

	total := pos + neg
	switch {
	case total == 0 || pos == neg:
		return debate.Label{Label: debate.SentimentNeutral, Score: 1}, nil
	case pos > neg:
		return debate.Label{Label: debate.SentimentPositive, Score: float64(pos) / float64(total)}, nil
	default:
		return debate.Label{Label: debate.SentimentNegative, Score: float64(neg) / float64(total)}, nil
	}
}

// Emotion picks the emotion with the most lexicon hits; ties break alphabetically.
type Emotion struct{}

func (Emotion) Classify(_ context.Context, text string) (debate.Label, error) {
	counts := map[string]int{}
	total := 0
	for _, w := range words(text) {
		for label, lex := range emotionWords {
			if lex[w] {
				counts[label]++
				total++
			}
		}
	}
	if total == 0 {
		return debate.Label{Label: debate.EmotionNeutral, Score: 1}, nil
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	best := labels[0]
	return debate.Label{Label: best, Score: float64(counts[best]) / float64(total)}, nil
}
