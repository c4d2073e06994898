package promquery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRange_ParsesSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/query_range", r.URL.Path)
		assert.Equal(t, `rate(http_requests_total[5m])`, r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {"result": [{"values": [[1700000000, "1.5"], [1700000030, "2.5"]]}]}
		}`))
	}))
	defer srv.Close()

	points, err := NewClient(srv.URL).QueryRange(context.Background(),
		`rate(http_requests_total[5m])`,
		time.Unix(1700000000, 0), time.Unix(1700000060, 0), 30*time.Second)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 1.5, points[0].Value)
	assert.Equal(t, 2.5, points[1].Value)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), points[0].Timestamp)
}

func TestQueryRange_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "success", "data": {"result": []}}`))
	}))
	defer srv.Close()

	points, err := NewClient(srv.URL).QueryRange(context.Background(),
		"up", time.Now().Add(-time.Hour), time.Now(), 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestQueryRange_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).QueryRange(context.Background(),
		"up", time.Now().Add(-time.Hour), time.Now(), 30*time.Second)
	assert.Error(t, err)
}
