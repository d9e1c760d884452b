package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payload is the raw upstream dashboard payload, pre-normalization. Daily
// records and lookup rows decode as untyped maps because the upstream schema
// guarantees nothing about key presence or value types.
type Payload struct {
	PerRestaurantDaily []map[string]any `json:"per_restaurant_daily"`
	ClientsList        []map[string]any `json:"clients_list"`
	RestaurantsList    []map[string]any `json:"restaurants_list"`
	LastUpdated        string           `json:"last_updated"`
}

// Source fetches the raw dashboard payload from wherever it lives
type Source interface {
	Fetch(ctx context.Context) (*Payload, error)
}

// HTTPSource fetches the payload from a JSON endpoint
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a new HTTP payload source
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single GET against the dataset endpoint. Any failure mode
// (network error, non-2xx status, non-object body) collapses into one generic
// load error; callers do not distinguish sub-causes.
func (s *HTTPSource) Fetch(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset fetch: read body: %w", err)
	}

	return decodePayload(body)
}

func decodePayload(body []byte) (*Payload, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("dataset fetch: payload is not a JSON object")
	}
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("dataset fetch: decode payload: %w", err)
	}
	return &payload, nil
}
