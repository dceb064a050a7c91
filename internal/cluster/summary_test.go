package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	// Unit square corners: centroid at (0.5, 0.5), every point at the same
	// distance from it.
	c := buildCluster(t,
		[3]float64{1, 0, 0},
		[3]float64{2, 1, 0},
		[3]float64{3, 0, 1},
		[3]float64{4, 1, 1},
	)

	s, err := Summarize(c)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Points)
	assert.InDelta(t, 0.5, s.CentroidX, 1e-12)
	assert.InDelta(t, 0.5, s.CentroidY, 1e-12)
	assert.Equal(t, 0.0, s.MinX)
	assert.Equal(t, 1.0, s.MaxX)
	assert.Equal(t, 0.0, s.MinY)
	assert.Equal(t, 1.0, s.MaxY)
	// Each corner is sqrt(0.5) from the centroid.
	assert.InDelta(t, 0.7071067811865476, s.MeanRadius, 1e-12)
}

func TestSummarize_Singleton(t *testing.T) {
	c := buildCluster(t, [3]float64{7, 3, -4})

	s, err := Summarize(c)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Points)
	assert.Equal(t, 3.0, s.CentroidX)
	assert.Equal(t, -4.0, s.CentroidY)
	assert.Equal(t, 0.0, s.MeanRadius)
}

func TestSummarize_Empty(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)

	_, err = Summarize(c)
	assert.ErrorIs(t, err, ErrEmptyCluster)
}
