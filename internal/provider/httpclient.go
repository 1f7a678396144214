package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

const maxResponseBytes = 4 << 20

// getJSON issues one GET with query parameters and decodes the JSON body.
// Callers wrap any returned error in a ProviderError at their boundary.
func getJSON(ctx context.Context, client *http.Client, endpoint string, params url.Values, out any) error {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	u := strings.TrimSpace(endpoint)
	if u == "" {
		return fmt.Errorf("empty endpoint")
	}
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
