package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

type HTTP struct{ c *http.Client }

// NewHTTP returns a client for the model services; timeout 0 means 60s.
func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTP{c: &http.Client{Timeout: timeout}}
}

// postJSON sends in as JSON to url+path and decodes a 200 response into out.
// name prefixes errors so callers can tell services apart.
func (h *HTTP) postJSON(ctx context.Context, name, url string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s encode: %w", name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s", name, resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decode: %w", name, err)
	}
	return nil
}
