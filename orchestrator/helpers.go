package orchestrator

import (
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// countWords sums whitespace-delimited tokens over all utterances.
func countWords(utts []debate.Utterance) int {
	n := 0
	for _, u := range utts {
		n += len(strings.Fields(u.Text))
	}
	return n
}

// distinctSpeakers keeps first-appearance order.
func distinctSpeakers(utts []debate.Utterance) []string {
	seen := make(map[string]struct{}, len(utts))
	out := []string{}
	for _, u := range utts {
		if _, ok := seen[u.Speaker]; ok {
			continue
		}
		seen[u.Speaker] = struct{}{}
		out = append(out, u.Speaker)
	}
	return out
}

// validateUtterances is the pre-provider check for callers that build utterances directly.
func validateUtterances(utts []debate.Utterance, topic string) error {
	if len(utts) == 0 && strings.TrimSpace(topic) == "" {
		return &debate.InputError{Position: -1, Err: debate.ErrEmptyTranscript}
	}
	for i, u := range utts {
		if strings.TrimSpace(u.Speaker) == "" {
			return &debate.InputError{Position: i, Reason: "empty speaker"}
		}
	}
	return nil
}
