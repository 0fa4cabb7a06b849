package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

var errNoEmotions = errors.New("emotion: service returned no scores")

// --- Emotion (/detect) ---
type EmoReq struct {
	Text string `json:"text"`
}
type EmoScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
type EmoResp struct {
	Emotions        []EmoScore `json:"emotions"`
	DominantEmotion string     `json:"dominant_emotion"`
}

func (h *HTTP) Emotion(ctx context.Context, url, text string) (*EmoResp, error) {
	var out EmoResp
	if err := h.postJSON(ctx, "emotion", url+"/detect", EmoReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Top returns the highest-scoring emotion, lower-cased. The dominant label wins ties.
func (r *EmoResp) Top() (debate.Label, error) {
	if len(r.Emotions) == 0 {
		if r.DominantEmotion == "" {
			return debate.Label{}, errNoEmotions
		}
		return debate.Label{Label: strings.ToLower(r.DominantEmotion), Score: 1}, nil
	}
	for _, e := range r.Emotions {
		if strings.TrimSpace(e.Label) == "" {
			return debate.Label{}, fmt.Errorf("%w: label", errIncomplete)
		}
	}
	best := r.Emotions[0]
	for _, e := range r.Emotions[1:] {
		if e.Score > best.Score || (e.Score == best.Score && strings.EqualFold(e.Label, r.DominantEmotion)) {
			best = e
		}
	}
	return debate.Label{Label: strings.ToLower(best.Label), Score: best.Score}, nil
}
