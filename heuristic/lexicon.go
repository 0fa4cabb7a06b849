// Package heuristic provides offline capability providers: lexicon sentiment and emotion,
// a hashed bag-of-words embedder and a rule-based grammar checker. They need no model
// server and are deterministic, which makes them the default backend and a convenient
// stand-in for tests.
package heuristic

import (
	"strings"
	"unicode"
)

// stopwords contains common English words excluded from embeddings.
//
//nolint:gochecknoglobals // lookup table
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "be": true, "been": true,
	"will": true, "would": true, "could": true, "should": true,
	"and": true, "or": true, "but": true, "if": true, "then": true,
	"so": true, "as": true, "at": true, "by": true, "for": true,
	"from": true, "in": true, "of": true, "on": true, "to": true,
	"with": true, "it": true, "its": true, "this": true, "that": true,
	"i": true, "my": true, "we": true, "they": true, "you": true,
}

//nolint:gochecknoglobals // lookup tables
var (
	positiveWords = setOf(
		"good", "great", "excellent", "agree", "benefit", "benefits", "beneficial", "better", "best",
		"support", "strong", "right", "true", "correct", "helpful", "improve", "improves", "positive",
		"success", "successful", "fair", "valuable", "effective", "love", "like", "happy", "glad",
		"convincing", "sound", "clear", "progress", "win", "opportunity", "safe",
	)
	negativeWords = setOf(
		"bad", "wrong", "terrible", "awful", "disagree", "harm", "harmful", "worse", "worst",
		"weak", "false", "fail", "fails", "failure", "problem", "problems", "negative", "unfair",
		"useless", "dangerous", "hate", "dislike", "sad", "angry", "flawed", "risk", "risky",
		"ridiculous", "nonsense", "poor", "lose", "loss", "threat",
	)
	negators = setOf("not", "no", "never", "don't", "doesn't", "isn't", "aren't", "won't", "can't", "cannot")

	emotionWords = map[string]map[string]bool{
		"anger":    setOf("angry", "furious", "outrageous", "outrage", "annoyed", "ridiculous", "hate", "mad", "unacceptable"),
		"disgust":  setOf("disgusting", "gross", "appalling", "shameful", "revolting", "nonsense", "sick"),
		"fear":     setOf("afraid", "fear", "scared", "worried", "worry", "dangerous", "threat", "risk", "risky", "anxious"),
		"joy":      setOf("happy", "glad", "great", "love", "excellent", "wonderful", "delighted", "excited", "good"),
		"sadness":  setOf("sad", "unfortunately", "sorry", "disappointed", "disappointing", "loss", "regret", "tragic"),
		"surprise": setOf("surprised", "surprising", "wow", "unexpected", "amazing", "astonishing", "shocking"),
	}
)

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// words lower-cases text and splits it on anything that is not a letter, digit or apostrophe.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
