package orchestrator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/farcloser/primordium/fault"
	"gopkg.in/yaml.v3"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// RawUtterance is a transcript entry as received, before validation.
// Nil fields mean the key was absent (or null).
type RawUtterance struct {
	Speaker *string `json:"speaker" yaml:"speaker"`
	Text    *string `json:"text" yaml:"text"`
}

type transcriptDoc struct {
	Topic      string         `json:"topic" yaml:"topic"`
	Transcript []RawUtterance `json:"transcript" yaml:"transcript"`
}

// ParseTranscript validates raw entries and assigns positions.
// Every entry needs a non-blank speaker and a text key; the text itself may be empty.
func ParseTranscript(raw []RawUtterance) ([]debate.Utterance, error) {
	out := make([]debate.Utterance, 0, len(raw))
	for i, r := range raw {
		if r.Speaker == nil {
			return nil, &debate.InputError{Position: i, Reason: "missing speaker"}
		}
		if strings.TrimSpace(*r.Speaker) == "" {
			return nil, &debate.InputError{Position: i, Reason: "empty speaker"}
		}
		if r.Text == nil {
			return nil, &debate.InputError{Position: i, Reason: "missing text"}
		}
		out = append(out, debate.Utterance{Position: i, Speaker: *r.Speaker, Text: *r.Text})
	}
	return out, nil
}

// DecodeTranscript accepts either a bare list of entries or an object with
// "transcript" and optional "topic". YAML is used when asYAML is set, JSON otherwise.
func DecodeTranscript(data []byte, asYAML bool) (*Transcript, error) {
	var doc transcriptDoc
	if asYAML {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", fault.ErrInvalidJSON, err)
		}
		if len(root.Content) > 0 {
			target := any(&doc)
			if root.Content[0].Kind == yaml.SequenceNode {
				target = &doc.Transcript
			}
			if err := root.Content[0].Decode(target); err != nil {
				return nil, fmt.Errorf("%w: yaml: %w", fault.ErrInvalidJSON, err)
			}
		}
	} else {
		trimmed := bytes.TrimSpace(data)
		var err error
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &doc.Transcript)
		} else {
			err = json.Unmarshal(trimmed, &doc)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
		}
	}

	utts, err := ParseTranscript(doc.Transcript)
	if err != nil {
		return nil, err
	}
	return &Transcript{Topic: doc.Topic, Utterances: utts}, nil
}

// LoadTranscript reads a transcript file; .yaml and .yml are decoded as YAML.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	return DecodeTranscript(data, ext == ".yaml" || ext == ".yml")
}
