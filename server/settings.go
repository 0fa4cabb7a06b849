package server

import (
	"fmt"
	"time"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/config"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

const defaultMaxBodyBytes = 4 << 20

// Settings controls the HTTP listener and where analyzed reports are written.
type Settings struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxBodyBytes int64

	// OutputsDir receives analyzed_transcript_<unix>.<ext>; empty skips the file.
	OutputsDir   string
	ReportFormat string
}

// SettingsFromConfig maps the loaded configuration onto server settings.
func SettingsFromConfig(cfg *config.Root) Settings {
	return Settings{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  config.DurSeconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.DurSeconds(cfg.Server.WriteTimeout),
		IdleTimeout:  60 * time.Second,
		MaxBodyBytes: defaultMaxBodyBytes,
		OutputsDir:   cfg.Paths.Outputs,
		ReportFormat: orchestrator.FormatJSON,
	}
}

func (s Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s Settings) maxBody() int64 {
	if s.MaxBodyBytes <= 0 {
		return defaultMaxBodyBytes
	}
	return s.MaxBodyBytes
}
