package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripNonFinite(t *testing.T) {
	valid, removed := StripNonFinite([]float64{1, math.NaN(), 2, math.Inf(1), 3, math.Inf(-1)})
	assert.Equal(t, []float64{1, 2, 3}, valid)
	assert.Equal(t, 3, removed)
}

func TestStripNonFinite_AllValid(t *testing.T) {
	valid, removed := StripNonFinite([]float64{1, 2})
	assert.Equal(t, []float64{1, 2}, valid)
	assert.Equal(t, 0, removed)
}

func TestFilterOutliersP95_SmallInputUnchanged(t *testing.T) {
	for n := 0; n < 5; n++ {
		input := make([]float64, n)
		for i := range input {
			input[i] = float64(i)
		}
		kept, outliers := FilterOutliersP95(input)
		assert.Len(t, kept, n)
		assert.Empty(t, outliers)
	}
}

func TestFilterOutliersP95_RemovesSpike(t *testing.T) {
	kept, outliers := FilterOutliersP95([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 1000})
	assert.Equal(t, []float64{1000}, outliers)
	assert.Len(t, kept, 9)
}

func TestFilterOutliersP95_TightDistributionKeepsAll(t *testing.T) {
	// All values equal: nothing exceeds the p95 threshold.
	kept, outliers := FilterOutliersP95([]float64{5, 5, 5, 5, 5})
	assert.Len(t, kept, 5)
	assert.Empty(t, outliers)
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	assert.InDelta(t, 2.5, Percentile([]float64{1, 2, 3, 4}, 50), 1e-9)
	assert.InDelta(t, 4, Percentile([]float64{1, 2, 3, 4}, 100), 1e-9)
	assert.InDelta(t, 1, Percentile([]float64{1, 2, 3, 4}, 0), 1e-9)
}

func TestLinearTrend_PositiveSlope(t *testing.T) {
	slope, r2, err := LinearTrend([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slope, 1e-9)
	assert.InDelta(t, 1.0, r2, 1e-9)
}

func TestLinearTrend_FlatSeries(t *testing.T) {
	slope, r2, err := LinearTrend([]float64{7, 7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, slope)
	assert.Equal(t, 0.0, r2)
	assert.False(t, math.IsNaN(r2))
}

func TestLinearTrend_TooFewPoints(t *testing.T) {
	_, _, err := LinearTrend([]float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestCoefVariation(t *testing.T) {
	cv, err := CoefVariation([]float64{10, 10, 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cv)

	cv, err = CoefVariation([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cv)

	cv, err = CoefVariation([]float64{-1, 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(cv, 1))
}

func TestCoefVariation_NegativeMeanUsesAbs(t *testing.T) {
	cv, err := CoefVariation([]float64{-10, -10, -12, -8})
	require.NoError(t, err)
	assert.Greater(t, cv, 0.0)
}

func TestPearsonWithLag_PerfectCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{2, 4, 6, 8, 10, 12, 14, 16}
	res, err := PearsonWithLag(a, b, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.R, 1e-9)
	assert.Equal(t, 0, res.Lag)
	assert.Equal(t, 8, res.Samples)
	assert.Less(t, res.PValue, 0.01)
}

func TestPearsonWithLag_DetectsShift(t *testing.T) {
	// b is a copied forward by 2 samples: a leads b.
	a := []float64{1, 5, 2, 8, 3, 9, 4, 7, 2, 6, 1, 5}
	b := append([]float64{0, 0}, a[:len(a)-2]...)
	res, err := PearsonWithLag(b, a, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lag)
	assert.InDelta(t, 1.0, res.R, 1e-9)
}

func TestPearsonWithLag_StripsNonFinite(t *testing.T) {
	a := []float64{1, math.NaN(), 2, 3, 4, 5, 6}
	b := []float64{2, 3, 4, 6, 8, 10, 12}
	_, err := PearsonWithLag(a, b, 1)
	require.NoError(t, err)
}

func TestPearsonWithLag_InsufficientData(t *testing.T) {
	_, err := PearsonWithLag([]float64{1, 2}, []float64{3, 4}, 1)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
