package heuristic

import (
	"context"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

func TestSentimentClassify(t *testing.T) {
	tests := []struct {
		text  string
		label string
	}{
		{"This is a great and helpful policy", debate.SentimentPositive},
		{"That argument is wrong and harmful", debate.SentimentNegative},
		{"The meeting is on Tuesday", debate.SentimentNeutral},
		{"This is not good", debate.SentimentNegative},
		{"", debate.SentimentNeutral},
	}
	for _, tt := range tests {
		got, err := Sentiment{}.Classify(context.Background(), tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got.Label != tt.label {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got.Label, tt.label)
		}
		if got.Score < 0 || got.Score > 1 {
			t.Errorf("Classify(%q) score %v out of range", tt.text, got.Score)
		}
	}
}

func TestEmotionClassify(t *testing.T) {
	tests := []struct {
		text  string
		label string
	}{
		{"I am furious, this is outrageous", debate.EmotionAnger},
		{"Wow, that is unexpected", debate.EmotionSurprise},
		{"Unfortunately I am disappointed", debate.EmotionSadness},
		{"Plain statement of fact", debate.EmotionNeutral},
	}
	for _, tt := range tests {
		got, err := Emotion{}.Classify(context.Background(), tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got.Label != tt.label {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got.Label, tt.label)
		}
	}
}

func TestEmbedderIsNormalizedAndStable(t *testing.T) {
	e := NewEmbedder(64)
	a, _ := e.Embed(context.Background(), "school uniforms reduce bullying")
	b, _ := e.Embed(context.Background(), "school uniforms reduce bullying")
	if !floats.Equal(a, b) {
		t.Fatal("embedding not deterministic")
	}
	if n := floats.Norm(a, 2); math.Abs(n-1) > 1e-9 {
		t.Fatalf("norm = %v", n)
	}
	if len(a) != e.Dimension() {
		t.Fatalf("len = %d", len(a))
	}
	z, _ := e.Embed(context.Background(), "the and of")
	if floats.Norm(z, 2) != 0 {
		t.Fatal("stopword-only text should embed to zeros")
	}
	if NewEmbedder(0).Dimension() != DefaultDimension {
		t.Fatal("default dimension not applied")
	}
}

func TestGrammarCheck(t *testing.T) {
	tests := []struct {
		text      string
		corrected string
		errors    int
	}{
		{"I think the idea is good.", "I think the idea is good.", 0},
		{"i think teh idea is good", "I think the idea is good.", 3},
		{"we we should vote", "We should vote.", 4},
		{"", "", 0},
		{"Yes! it works", "Yes! It works.", 2},
	}
	for _, tt := range tests {
		got, err := Grammar{}.Check(context.Background(), tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got.CorrectedText != tt.corrected {
			t.Errorf("Check(%q) corrected = %q, want %q", tt.text, got.CorrectedText, tt.corrected)
		}
		if got.ErrorCount != tt.errors {
			t.Errorf("Check(%q) errors = %d, want %d", tt.text, got.ErrorCount, tt.errors)
		}
	}
}

func TestTokenDivergence(t *testing.T) {
	if got := TokenDivergence("a b c", "a b c"); got != 0 {
		t.Errorf("identical = %d", got)
	}
	if got := TokenDivergence("a b c d", "a x"); got != 3 {
		t.Errorf("shorter correction = %d", got)
	}
}
