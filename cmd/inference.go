package cmd

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/clients"
)

func newInferenceCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "inference",
		Short: "Inference service for remote capability providers",
	}
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Host the offline heuristic providers over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr := a.cfg.Server.GRPCAddress()
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			s := grpc.NewServer()
			clients.RegisterInference(s, heuristicProviders(a.cfg.Providers.EmbeddingDim))

			go func() {
				<-ctx.Done()
				a.log.Info("stopping inference server")
				s.GracefulStop()
			}()
			a.log.WithField("addr", lis.Addr().String()).Info("inference server listening")
			return s.Serve(lis)
		},
	}
	serve.Flags().String("host", "", "listen host")
	serve.Flags().Int("grpc-port", 0, "listen port")
	c.AddCommand(serve)
	return c
}
