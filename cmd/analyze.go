package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var (
		reportFormat string
		printFormat  string
		pretty       bool
	)
	c := &cobra.Command{
		Use:   "analyze <transcript.(json|yaml)>",
		Short: "Analyze a transcript file and write the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := orchestrator.LoadTranscript(args[0])
			if err != nil {
				return err
			}
			// --topic (or analysis.topic) only overrides a topic embedded in the file when given explicitly.
			topic := t.Topic
			if topic == "" || cmd.Flags().Changed("topic") {
				topic = a.cfg.Analysis.Topic
			}

			providers, closeProviders, err := buildProviders(a.cfg)
			if err != nil {
				return err
			}
			defer closeProviders()

			p := orchestrator.NewPipeline(providers,
				orchestrator.WithLogger(a.log),
				orchestrator.WithSeed(a.cfg.Analysis.Seed),
			)
			rep, err := p.Run(cmd.Context(), t.Utterances, topic)
			if err != nil {
				return err
			}
			path, err := orchestrator.Persist(a.cfg.Paths.Outputs, rep, reportFormat)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"file": path, "backend": a.cfg.Providers.Backend}).Info("report written")

			if pretty {
				_, err = cmd.OutOrStdout().Write([]byte(renderPretty(rep, path) + "\n"))
				return err
			}
			return outputReport(cmd.OutOrStdout(), path, rep, printFormat)
		},
	}
	f := c.Flags()
	f.String("topic", "", "debate topic; defaults to the transcript's own text")
	f.String("out", "", "directory for analyzed_transcript_<unix> reports")
	f.Uint64("seed", 0, "phrase selection seed (0 varies every run)")
	f.StringVar(&reportFormat, "format", orchestrator.FormatJSON, "report file format: json, yaml")
	f.StringVar(&printFormat, "print", "console", "summary output: console, json, markdown")
	f.BoolVar(&pretty, "pretty", false, "render a styled terminal summary instead of --print")
	return c
}
