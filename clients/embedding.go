package clients

import (
	"context"
	"errors"
)

var errNoEmbedding = errors.New("embedding: service returned no vectors")

// --- Embeddings (/v1/embeddings, OpenAI-compatible) ---
type EmbeddingReq struct {
	Input string `json:"input"`
	Model string `json:"model,omitempty"`
}

type EmbeddingResp struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
}

func (h *HTTP) Embedding(ctx context.Context, url, model, text string) ([]float64, error) {
	var out EmbeddingResp
	if err := h.postJSON(ctx, "embedding", url+"/v1/embeddings", EmbeddingReq{Input: text, Model: model}, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, errNoEmbedding
	}
	return out.Data[0].Embedding, nil
}
