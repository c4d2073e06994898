package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// QdrantStore implements Store against the Qdrant HTTP API.
type QdrantStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewQdrantStore creates a client for the given base URL
// (e.g. http://localhost:6333). apiKey may be empty.
func NewQdrantStore(baseURL, apiKey string) *QdrantStore {
	return &QdrantStore{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// EnsureCollection creates the collection with cosine distance if it does
// not exist. Qdrant returns 409 for an existing collection; that is not
// an error.
func (s *QdrantStore) EnsureCollection(ctx context.Context, name string, dim int) error {
	body := map[string]any{
		"vectors": map[string]any{"size": dim, "distance": "Cosine"},
	}
	status, _, err := s.do(ctx, http.MethodPut, "/collections/"+name, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusConflict {
		return fmt.Errorf("vector: create collection %s: status %d", name, status)
	}
	return nil
}

// Upsert writes one point.
func (s *QdrantStore) Upsert(ctx context.Context, collection, id string, vec []float64, payload map[string]any) error {
	body := map[string]any{
		"points": []map[string]any{
			{"id": id, "vector": vec, "payload": payload},
		},
	}
	status, respBody, err := s.do(ctx, http.MethodPut, "/collections/"+collection+"/points?wait=true", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("vector: upsert into %s: status %d: %s", collection, status, respBody)
	}
	return nil
}

// Search runs a similarity query with payloads included.
func (s *QdrantStore) Search(ctx context.Context, collection string, query []float64, topK int, scoreThreshold float64) ([]Point, error) {
	body := map[string]any{
		"vector":          query,
		"limit":           topK,
		"score_threshold": scoreThreshold,
		"with_payload":    true,
	}
	status, respBody, err := s.do(ctx, http.MethodPost, "/collections/"+collection+"/points/search", body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("vector: search %s: status %d: %s", collection, status, respBody)
	}

	var parsed struct {
		Result []struct {
			ID      any            `json:"id"`
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("vector: decode search response: %w", err)
	}

	points := make([]Point, 0, len(parsed.Result))
	for _, r := range parsed.Result {
		points = append(points, Point{
			ID:      fmt.Sprintf("%v", r.ID),
			Score:   r.Score,
			Payload: r.Payload,
		})
	}
	return points, nil
}

func (s *QdrantStore) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("vector: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("vector: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("vector: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("vector: read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
