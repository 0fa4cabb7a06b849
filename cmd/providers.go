package cmd

import (
	"fmt"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/clients"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/config"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/heuristic"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

func heuristicProviders(dim int) orchestrator.Providers {
	return orchestrator.Providers{
		Sentiment: heuristic.Sentiment{},
		Emotion:   heuristic.Emotion{},
		Embedder:  heuristic.NewEmbedder(dim),
		Grammar:   heuristic.Grammar{},
	}
}

// buildProviders returns the configured backend and a release func for its connections.
func buildProviders(cfg *config.Root) (orchestrator.Providers, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Providers.Backend {
	case config.BackendHeuristic:
		return heuristicProviders(cfg.Providers.EmbeddingDim), noop, nil
	case config.BackendHTTP:
		s := cfg.Services
		h := clients.NewHTTP(config.DurSeconds(cfg.Providers.Timeout))
		return h.Providers(clients.ServiceURLs{
			Sentiment:      s.Sentiment.URL,
			Emotion:        s.Emotion.URL,
			Embedding:      s.Embedding.URL,
			EmbeddingModel: s.Embedding.Model,
			Grammar:        s.Grammar.URL,
		}), noop, nil
	case config.BackendGRPC:
		inf, err := clients.DialInference(cfg.Services.Inference.URL)
		if err != nil {
			return orchestrator.Providers{}, noop, fmt.Errorf("dial inference %s: %w", cfg.Services.Inference.URL, err)
		}
		return inf.Providers(), inf.Close, nil
	default:
		return orchestrator.Providers{}, noop, fmt.Errorf("unknown provider backend %q", cfg.Providers.Backend)
	}
}
