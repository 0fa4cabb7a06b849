package clients

import (
	"context"
)

// --- Grammar correction (/correct) ---
type GrammarReq struct {
	Text string `json:"text"`
}
type GrammarResp struct {
	CorrectedText *string `json:"corrected_text"`
}

func (h *HTTP) Grammar(ctx context.Context, url, text string) (*GrammarResp, error) {
	var out GrammarResp
	if err := h.postJSON(ctx, "grammar", url+"/correct", GrammarReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
