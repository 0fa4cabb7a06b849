package clients

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

func modelServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sentiment", func(w http.ResponseWriter, r *http.Request) {
		var req SentimentReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		label := "LABEL_2"
		if strings.Contains(req.Text, "bad") {
			label = "LABEL_0"
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"label": label, "score": 0.97})
	})
	mux.HandleFunc("/detect", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(EmoResp{
			Emotions:        []EmoScore{{"neutral", 0.2}, {"Anger", 0.7}, {"joy", 0.1}},
			DominantEmotion: "anger",
		})
	})
	mux.HandleFunc("/v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req EmbeddingReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "mini" {
			http.Error(w, "unknown model", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3],"index":0}],"model":"mini"}`))
	})
	mux.HandleFunc("/correct", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"corrected_text": "I think so."}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPProviders(t *testing.T) {
	srv := modelServer(t)
	pr := NewHTTP(0).Providers(ServiceURLs{
		Sentiment:      srv.URL,
		Emotion:        srv.URL,
		Embedding:      srv.URL,
		EmbeddingModel: "mini",
		Grammar:        srv.URL,
	})
	ctx := context.Background()

	s, err := pr.Sentiment.Classify(ctx, "a bad plan")
	if err != nil || s.Label != debate.SentimentNegative || s.Score != 0.97 {
		t.Fatalf("sentiment = %+v, %v", s, err)
	}
	e, err := pr.Emotion.Classify(ctx, "x")
	if err != nil || e.Label != "anger" || e.Score != 0.7 {
		t.Fatalf("emotion = %+v, %v", e, err)
	}
	v, err := pr.Embedder.Embed(ctx, "x")
	if err != nil || len(v) != 3 {
		t.Fatalf("embedding = %v, %v", v, err)
	}
	g, err := pr.Grammar.Check(ctx, "i think so")
	if err != nil || g.CorrectedText != "I think so." || g.ErrorCount != 2 {
		t.Fatalf("grammar = %+v, %v", g, err)
	}
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := modelServer(t)
	_, err := NewHTTP(0).Embedding(context.Background(), srv.URL, "other", "x")
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestEmoRespTop(t *testing.T) {
	r := &EmoResp{Emotions: []EmoScore{{"joy", 0.4}, {"Sadness", 0.4}}, DominantEmotion: "sadness"}
	got, err := r.Top()
	if err != nil || got.Label != "sadness" {
		t.Fatalf("Top() = %+v, %v", got, err)
	}
	if _, err := (&EmoResp{}).Top(); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestNormalizeSentiment(t *testing.T) {
	for in, want := range map[string]string{
		"POSITIVE": "positive",
		"LABEL_1":  "neutral",
		"neg":      "negative",
		"mixed":    "mixed",
	} {
		if got := NormalizeSentiment(in); got != want {
			t.Errorf("NormalizeSentiment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHTTPProvidersRejectEmptyResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	pr := NewHTTP(0).Providers(ServiceURLs{Sentiment: srv.URL, Emotion: srv.URL, Embedding: srv.URL, Grammar: srv.URL})
	ctx := context.Background()

	if l, err := pr.Sentiment.Classify(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("sentiment: got %+v, %v", l, err)
	}
	if l, err := pr.Emotion.Classify(ctx, "x"); err == nil {
		t.Fatalf("emotion: got %+v, want error", l)
	}
	if g, err := pr.Grammar.Check(ctx, "x"); !errors.Is(err, errIncomplete) {
		t.Fatalf("grammar: got %+v, %v", g, err)
	}
	if v, err := pr.Embedder.Embed(ctx, "x"); err == nil {
		t.Fatalf("embedding: got %v, want error", v)
	}
}

func TestHTTPProvidersRejectPartialResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(pr orchestrator.Providers) error
	}{
		{"sentiment without score", `{"label": "positive"}`, func(pr orchestrator.Providers) error {
			_, err := pr.Sentiment.Classify(context.Background(), "x")
			return err
		}},
		{"sentiment blank label", `{"label": " ", "score": 0.5}`, func(pr orchestrator.Providers) error {
			_, err := pr.Sentiment.Classify(context.Background(), "x")
			return err
		}},
		{"emotion blank label", `{"emotions": [{"label": "", "score": 0.9}]}`, func(pr orchestrator.Providers) error {
			_, err := pr.Emotion.Classify(context.Background(), "x")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)
			pr := NewHTTP(0).Providers(ServiceURLs{Sentiment: srv.URL, Emotion: srv.URL})
			if err := tt.call(pr); !errors.Is(err, errIncomplete) {
				t.Fatalf("expected missing-field error, got %v", err)
			}
		})
	}
}

func TestGrammarEmptyCorrectionIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"corrected_text": ""}`))
	}))
	t.Cleanup(srv.Close)
	g, err := GrammarService{HTTP: NewHTTP(0), URL: srv.URL}.Check(context.Background(), "")
	if err != nil || g.ErrorCount != 0 {
		t.Fatalf("grammar = %+v, %v", g, err)
	}
}

func TestCheckScore(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := checkScore(v); !errors.Is(err, errInvalidValue) {
			t.Errorf("checkScore(%v) = %v, want errInvalidValue", v, err)
		}
	}
	if got, err := checkScore(1.7); err != nil || got != 1 {
		t.Errorf("checkScore(1.7) = %v, %v", got, err)
	}
}
