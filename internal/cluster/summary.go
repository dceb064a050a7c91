package cluster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/cluster.report/internal/geom"
)

// Summary holds per-cluster shape metrics for reporting and plotting.
type Summary struct {
	CentroidX  float64
	CentroidY  float64
	MinX, MaxX float64
	MinY, MaxY float64
	MeanRadius float64 // mean point distance from the centroid
	Points     int
}

// Summarize computes shape metrics for a cluster. Empty clusters are
// rejected with ErrEmptyCluster.
func Summarize(c *Cluster) (Summary, error) {
	if c.Len() == 0 {
		return Summary{}, ErrEmptyCluster
	}

	xs := make([]float64, c.Len())
	ys := make([]float64, c.Len())
	for i, p := range c.pts {
		xs[i] = p.X()
		ys[i] = p.Y()
	}

	s := Summary{
		CentroidX: stat.Mean(xs, nil),
		CentroidY: stat.Mean(ys, nil),
		MinX:      floats.Min(xs),
		MaxX:      floats.Max(xs),
		MinY:      floats.Min(ys),
		MaxY:      floats.Max(ys),
		Points:    c.Len(),
	}

	centroid := geom.NewPoint(0, s.CentroidX, s.CentroidY)
	radii := make([]float64, c.Len())
	for i, p := range c.pts {
		radii[i] = geom.Distance(p, centroid)
	}
	s.MeanRadius = stat.Mean(radii, nil)

	return s, nil
}
