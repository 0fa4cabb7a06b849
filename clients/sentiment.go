package clients

import (
	"context"
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// --- Sentiment (/sentiment) ---
type SentimentReq struct {
	Text string `json:"text"`
}
type SentimentResp struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}

func (h *HTTP) Sentiment(ctx context.Context, url, text string) (*SentimentResp, error) {
	var out SentimentResp
	if err := h.postJSON(ctx, "sentiment", url+"/sentiment", SentimentReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NormalizeSentiment lower-cases a model label and maps the three-class
// LABEL_0/1/2 convention (negative, neutral, positive) onto names.
// Other labels pass through lower-cased.
func NormalizeSentiment(label string) string {
	switch l := strings.ToLower(strings.TrimSpace(label)); l {
	case "label_0", "neg":
		return debate.SentimentNegative
	case "label_1", "neu":
		return debate.SentimentNeutral
	case "label_2", "pos":
		return debate.SentimentPositive
	default:
		return l
	}
}
