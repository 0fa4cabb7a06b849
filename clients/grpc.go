package clients

import (
	"context"
	"fmt"
	"math"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

// The inference service exchanges google.protobuf.Struct messages:
//
//	Sentiment, Emotion  {text} -> {label, score}
//	Embed               {text} -> {embedding: [numbers]}
//	Grammar             {text} -> {errors, corrected_text}
const inferenceService = "debate.inference.v1.Inference"

const (
	methodSentiment = "Sentiment"
	methodEmotion   = "Emotion"
	methodEmbed     = "Embed"
	methodGrammar   = "Grammar"
)

// Inference is a gRPC client for a remote model host.
type Inference struct {
	conn *grpc.ClientConn
}

// DialInference connects without TLS; model hosts sit next to the analyzer.
func DialInference(addr string, opts ...grpc.DialOption) (*Inference, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Inference{conn: conn}, nil
}

func (c *Inference) Close() error {
	return c.conn.Close()
}

// Providers exposes the remote host as pipeline capabilities.
func (c *Inference) Providers() orchestrator.Providers {
	return orchestrator.Providers{
		Sentiment: grpcLabeler{c: c, method: methodSentiment},
		Emotion:   grpcLabeler{c: c, method: methodEmotion},
		Embedder:  grpcEmbedder{c: c},
		Grammar:   grpcGrammar{c: c},
	}
}

func (c *Inference) call(ctx context.Context, method, text string) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(map[string]any{"text": text})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+inferenceService+"/"+method, req, out); err != nil {
		return nil, fmt.Errorf("inference %s: %w", strings.ToLower(method), err)
	}
	return out, nil
}

type grpcLabeler struct {
	c      *Inference
	method string
}

func (g grpcLabeler) Classify(ctx context.Context, text string) (debate.Label, error) {
	out, err := g.c.call(ctx, g.method, text)
	if err != nil {
		return debate.Label{}, err
	}
	fields := out.GetFields()
	name := strings.ToLower(strings.TrimSpace(fields["label"].GetStringValue()))
	if name == "" {
		return debate.Label{}, fmt.Errorf("inference %w: label", errIncomplete)
	}
	raw, ok := fields["score"].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return debate.Label{}, fmt.Errorf("inference %w: score", errIncomplete)
	}
	score, err := checkScore(raw.NumberValue)
	if err != nil {
		return debate.Label{}, fmt.Errorf("inference: %w", err)
	}
	if g.method == methodSentiment {
		name = NormalizeSentiment(name)
	}
	return debate.Label{Label: name, Score: score}, nil
}

type grpcEmbedder struct{ c *Inference }

func (g grpcEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	out, err := g.c.call(ctx, methodEmbed, text)
	if err != nil {
		return nil, err
	}
	list := out.GetFields()["embedding"].GetListValue()
	if list == nil {
		return nil, fmt.Errorf("inference %w: embedding", errIncomplete)
	}
	vec := make([]float64, len(list.GetValues()))
	for i, v := range list.GetValues() {
		vec[i] = v.GetNumberValue()
	}
	return vec, nil
}

type grpcGrammar struct{ c *Inference }

func (g grpcGrammar) Check(ctx context.Context, text string) (debate.Grammar, error) {
	out, err := g.c.call(ctx, methodGrammar, text)
	if err != nil {
		return debate.Grammar{}, err
	}
	fields := out.GetFields()
	corrected, ok := fields["corrected_text"].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return debate.Grammar{}, fmt.Errorf("inference %w: corrected_text", errIncomplete)
	}
	count, ok := fields["errors"].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return debate.Grammar{}, fmt.Errorf("inference %w: errors", errIncomplete)
	}
	n, err := errorCount(count.NumberValue)
	if err != nil {
		return debate.Grammar{}, fmt.Errorf("inference: %w", err)
	}
	return debate.Grammar{ErrorCount: n, CorrectedText: corrected.StringValue}, nil
}

// errorCount converts a wire count, rejecting values with no int meaning. Negatives floor at 0.
func errorCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: errors %v", errInvalidValue, v)
	}
	if v < 0 {
		return 0, nil
	}
	return int(v), nil
}
