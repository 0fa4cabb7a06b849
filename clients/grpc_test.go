package clients

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/heuristic"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

type failingGrammar struct{}

func (failingGrammar) Check(context.Context, string) (debate.Grammar, error) {
	return debate.Grammar{}, errors.New("corrector crashed")
}

// cannedInference answers every method with the same reply.
type cannedInference struct{ reply map[string]any }

func (c cannedInference) handle(context.Context, string, *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(c.reply)
}

func startInference(t *testing.T, p orchestrator.Providers) *Inference {
	t.Helper()
	return serveInference(t, &InferenceServer{providers: p})
}

func serveInference(t *testing.T, impl inferenceHandler) *Inference {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	srv.RegisterService(&inferenceDesc, impl)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := DialInference("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	if err != nil {
		t.Fatalf("DialInference: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestInferenceRoundTrip(t *testing.T) {
	local := orchestrator.Providers{
		Sentiment: heuristic.Sentiment{},
		Emotion:   heuristic.Emotion{},
		Embedder:  heuristic.NewEmbedder(16),
		Grammar:   heuristic.Grammar{},
	}
	remote := startInference(t, local).Providers()
	ctx := context.Background()

	s, err := remote.Sentiment.Classify(ctx, "a great and helpful idea")
	if err != nil || s.Label != debate.SentimentPositive {
		t.Fatalf("sentiment = %+v, %v", s, err)
	}
	e, err := remote.Emotion.Classify(ctx, "I am furious")
	if err != nil || e.Label != debate.EmotionAnger {
		t.Fatalf("emotion = %+v, %v", e, err)
	}
	want, _ := local.Embedder.Embed(ctx, "school uniforms")
	got, err := remote.Embedder.Embed(ctx, "school uniforms")
	if err != nil || len(got) != 16 {
		t.Fatalf("embed = %v, %v", got, err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("embedding[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	g, err := remote.Grammar.Check(ctx, "i think teh idea is good")
	if err != nil || g.ErrorCount != 3 || g.CorrectedText != "I think the idea is good." {
		t.Fatalf("grammar = %+v, %v", g, err)
	}
}

func TestInferenceErrors(t *testing.T) {
	remote := startInference(t, orchestrator.Providers{Grammar: failingGrammar{}}).Providers()

	_, err := remote.Grammar.Check(context.Background(), "x")
	if status.Code(errors.Unwrap(err)) != codes.Internal {
		t.Fatalf("grammar failure: got %v", err)
	}
	_, err = remote.Sentiment.Classify(context.Background(), "x")
	if status.Code(errors.Unwrap(err)) != codes.Unimplemented {
		t.Fatalf("missing provider: got %v", err)
	}
}

func TestInferenceRejectsIncompleteReplies(t *testing.T) {
	ctx := context.Background()

	empty := serveInference(t, cannedInference{reply: map[string]any{}}).Providers()
	if l, err := empty.Sentiment.Classify(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("sentiment on {}: %+v, %v", l, err)
	}
	if l, err := empty.Emotion.Classify(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("emotion on {}: %+v, %v", l, err)
	}
	if v, err := empty.Embedder.Embed(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("embed on {}: %v, %v", v, err)
	}
	if g, err := empty.Grammar.Check(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("grammar on {}: %+v, %v", g, err)
	}

	noScore := serveInference(t, cannedInference{reply: map[string]any{"label": "joy"}}).Providers()
	if l, err := noScore.Emotion.Classify(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("emotion without score: %+v, %v", l, err)
	}

	noCount := serveInference(t, cannedInference{reply: map[string]any{"corrected_text": "Fine."}}).Providers()
	if g, err := noCount.Grammar.Check(ctx, "fine"); !errors.Is(err, errIncomplete) {
		t.Fatalf("grammar without errors: %+v, %v", g, err)
	}
}

func TestInferenceRejectsOutOfRangeCounts(t *testing.T) {
	for _, v := range []float64{1e300, 2.5} {
		remote := serveInference(t, cannedInference{reply: map[string]any{"corrected_text": "Fine.", "errors": v}}).Providers()
		if g, err := remote.Grammar.Check(context.Background(), "fine"); !errors.Is(err, errInvalidValue) {
			t.Fatalf("errors=%v: got %+v, %v", v, g, err)
		}
	}
}

func TestErrorCount(t *testing.T) {
	tests := []struct {
		in      float64
		want    int
		wantErr bool
	}{
		{3, 3, false},
		{-2, 0, false},
		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
		{1e19, 0, true},
		{0.5, 0, true},
	}
	for _, tt := range tests {
		got, err := errorCount(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("errorCount(%v) = %d, %v", tt.in, got, err)
		}
	}
}
