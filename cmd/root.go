// Package cmd is the composition root: it loads configuration, builds the
// capability providers and wires them into the analyzer surfaces.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/config"
)

// flagKeys binds command flags to config keys; a flag set on the command line wins.
//
//nolint:gochecknoglobals // flag table
var flagKeys = map[string]string{
	"log-level": "pipeline.log_level",
	"backend":   "providers.backend",
	"topic":     "analysis.topic",
	"seed":      "analysis.seed",
	"out":       "paths.outputs",
	"store":     "paths.store",
	"host":      "server.host",
	"port":      "server.port",
	"grpc-port": "server.grpc_port",
}

type app struct {
	configFile string
	cfg        *config.Root
	log        *logrus.Logger
}

// NewRootCommand assembles the debate command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "debate",
		Short:         "Analyze debate transcripts: sentiment, emotion, relevance and grammar feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: config/$CONFIG_ENV/config.yaml or ./config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("backend", "", "provider backend: heuristic, http, grpc")

	root.AddCommand(
		newAnalyzeCommand(a),
		newServeCommand(a),
		newInferenceCommand(a),
		newVersionCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	v := config.New(a.configFile)
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cfg)
	a.log.WithFields(logrus.Fields{
		"pipeline": cfg.Pipeline.Name,
		"backend":  cfg.Providers.Backend,
		"config":   v.ConfigFileUsed(),
	}).Debug("configuration loaded")
	return nil
}

func newLogger(cfg *config.Root) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(cfg.Pipeline.LogLvl)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	if strings.EqualFold(cfg.Pipeline.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if err != nil {
		log.WithField("log_level", cfg.Pipeline.LogLvl).Warn("unknown log level, using info")
	}
	return log
}

// Execute runs the command tree and reports a failure on stderr.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "debate:", err)
		return 1
	}
	return 0
}
