package vector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SearchOrdersByScore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.EnsureCollection(ctx, "decisions", 3))

	require.NoError(t, s.Upsert(ctx, "decisions", "exact", []float64{1, 0, 0}, map[string]any{"summary": "closed"}))
	require.NoError(t, s.Upsert(ctx, "decisions", "close", []float64{0.9, 0.1, 0}, nil))
	require.NoError(t, s.Upsert(ctx, "decisions", "far", []float64{0, 0, 1}, nil))

	hits, err := s.Search(ctx, "decisions", []float64{1, 0, 0}, 2, 0.5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "exact", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
	assert.Equal(t, "close", hits[1].ID)
}

func TestMemoryStore_ThresholdFilters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Upsert(ctx, "decisions", "orthogonal", []float64{0, 1}, nil))

	hits, err := s.Search(ctx, "decisions", []float64{1, 0}, 10, 0.5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestMemoryStore_UnknownCollectionEmpty(t *testing.T) {
	hits, err := NewMemoryStore().Search(context.Background(), "missing", []float64{1}, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.EnsureCollection(ctx, "decisions", 3))

	err := s.Upsert(ctx, "decisions", "bad", []float64{1, 2}, nil)
	assert.Error(t, err)
}
