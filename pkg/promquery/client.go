// Package promquery is a thin client for the Prometheus HTTP query API,
// feeding the trend analyzer with time series.
package promquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Client queries a Prometheus server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL
// (e.g. http://localhost:9090).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type rangeResponse struct {
	Status string `json:"status"`
	Data   struct {
		Result []struct {
			Values [][2]any `json:"values"`
		} `json:"result"`
	} `json:"data"`
}

// QueryRange runs a range query and flattens the first series into data
// points ordered by timestamp.
func (c *Client) QueryRange(ctx context.Context, query string, start, end time.Time, step time.Duration) ([]models.DataPoint, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("start", strconv.FormatInt(start.Unix(), 10))
	params.Set("end", strconv.FormatInt(end.Unix(), 10))
	params.Set("step", strconv.Itoa(int(step.Seconds())))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/query_range?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("promquery: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("promquery: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("promquery: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("promquery: status %d", resp.StatusCode)
	}

	var parsed rangeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("promquery: decode response: %w", err)
	}
	if parsed.Status != "success" || len(parsed.Data.Result) == 0 {
		return nil, nil
	}

	values := parsed.Data.Result[0].Values
	points := make([]models.DataPoint, 0, len(values))
	for _, pair := range values {
		ts, ok := toFloat(pair[0])
		if !ok {
			continue
		}
		raw, ok := pair[1].(string)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		points = append(points, models.DataPoint{
			Timestamp: time.Unix(int64(ts), 0).UTC(),
			Value:     v,
		})
	}
	return points, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
