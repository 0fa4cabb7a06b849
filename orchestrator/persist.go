package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// Report file encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Persist writes rep under outputsRoot as analyzed_transcript_<unix>.<format> and returns the path.
func Persist(outputsRoot string, rep *debate.Report, format string) (string, error) {
	if err := os.MkdirAll(outputsRoot, 0o755); err != nil {
		return "", err
	}
	ts := rep.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	switch format {
	case FormatJSON, "":
		path := filepath.Join(outputsRoot, fmt.Sprintf("analyzed_transcript_%d.json", ts.Unix()))
		return path, writeJSON(path, rep)
	case FormatYAML:
		path := filepath.Join(outputsRoot, fmt.Sprintf("analyzed_transcript_%d.yaml", ts.Unix()))
		return path, writeYAML(path, rep)
	default:
		return "", fmt.Errorf("unknown report format %q (valid: json, yaml)", format)
	}
}
