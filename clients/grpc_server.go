package clients

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

type inferenceHandler interface {
	handle(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error)
}

// InferenceServer serves local providers over the inference service.
type InferenceServer struct {
	providers orchestrator.Providers
}

// RegisterInference attaches the inference service backed by p to s.
func RegisterInference(s *grpc.Server, p orchestrator.Providers) {
	s.RegisterService(&inferenceDesc, &InferenceServer{providers: p})
}

//nolint:gochecknoglobals // service descriptor
var inferenceDesc = grpc.ServiceDesc{
	ServiceName: inferenceService,
	HandlerType: (*inferenceHandler)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: methodSentiment, Handler: unaryHandler(methodSentiment)},
		{MethodName: methodEmotion, Handler: unaryHandler(methodEmotion)},
		{MethodName: methodEmbed, Handler: unaryHandler(methodEmbed)},
		{MethodName: methodGrammar, Handler: unaryHandler(methodGrammar)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "debate/inference/v1/inference.proto",
}

func unaryHandler(method string) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		h := srv.(inferenceHandler)
		if interceptor == nil {
			return h.handle(ctx, method, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + inferenceService + "/" + method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return h.handle(ctx, method, req.(*structpb.Struct))
		})
	}
}

func (s *InferenceServer) handle(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	text := in.GetFields()["text"].GetStringValue()
	var (
		out map[string]any
		err error
	)
	switch method {
	case methodSentiment, methodEmotion:
		classify := s.providers.Sentiment
		if method == methodEmotion {
			classify = s.providers.Emotion
		}
		if classify == nil {
			return nil, status.Errorf(codes.Unimplemented, "%s not configured", method)
		}
		l, cerr := classify.Classify(ctx, text)
		out, err = map[string]any{"label": l.Label, "score": l.Score}, cerr
	case methodEmbed:
		if s.providers.Embedder == nil {
			return nil, status.Errorf(codes.Unimplemented, "%s not configured", method)
		}
		vec, eerr := s.providers.Embedder.Embed(ctx, text)
		list := make([]any, len(vec))
		for i, v := range vec {
			list[i] = v
		}
		out, err = map[string]any{"embedding": list}, eerr
	case methodGrammar:
		if s.providers.Grammar == nil {
			return nil, status.Errorf(codes.Unimplemented, "%s not configured", method)
		}
		g, gerr := s.providers.Grammar.Check(ctx, text)
		out, err = map[string]any{"errors": float64(g.ErrorCount), "corrected_text": g.CorrectedText}, gerr
	default:
		return nil, status.Errorf(codes.Unimplemented, "unknown method %s", method)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	resp, err := structpb.NewStruct(out)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}
