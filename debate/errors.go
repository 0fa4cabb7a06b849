package debate

import (
	"errors"
	"fmt"
)

var ErrEmptyTranscript = errors.New("transcript is empty and no topic was given")

// InputError rejects a transcript before any provider is called.
// Position is -1 when the problem is not tied to one record.
type InputError struct {
	Position int
	Reason   string
	Err      error
}

func (e *InputError) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Position < 0 {
		return "invalid transcript: " + msg
	}
	return fmt.Sprintf("invalid transcript entry at index %d: %s", e.Position, msg)
}

func (e *InputError) Unwrap() error { return e.Err }

// Capability names used in ProviderError.
const (
	CapSentiment = "sentiment"
	CapEmotion   = "emotion"
	CapEmbedding = "embedding"
	CapGrammar   = "grammar"
)

// ProviderError aborts a run when a capability provider fails.
// Position is -1 for the topic embedding.
type ProviderError struct {
	Position   int
	Speaker    string
	Capability string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s provider failed on topic: %v", e.Capability, e.Err)
	}
	return fmt.Sprintf("%s provider failed on utterance %d (%s): %v", e.Capability, e.Position, e.Speaker, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
