package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/server"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/store"
)

func newServeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the save/analyze transcript HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := store.Open(a.cfg.Paths.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			providers, closeProviders, err := buildProviders(a.cfg)
			if err != nil {
				return err
			}
			defer closeProviders()

			srv := server.New(server.SettingsFromConfig(a.cfg), providers, st,
				server.WithLogger(a.log.WithField("component", "http")),
				server.WithPipelineOptions(orchestrator.WithSeed(a.cfg.Analysis.Seed)),
			)
			if err := srv.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	f := c.Flags()
	f.String("host", "", "listen host")
	f.Int("port", 0, "listen port")
	f.String("store", "", "sqlite database path")
	f.String("out", "", "directory for analyzed_transcript_<unix> reports")
	f.Uint64("seed", 0, "phrase selection seed (0 varies every run)")
	return c
}
