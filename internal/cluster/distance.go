package cluster

import "github.com/banshee-data/cluster.report/internal/geom"

// Distance returns the average-linkage distance between two clusters: the
// arithmetic mean of the Euclidean distance over every pair of points drawn
// one from each side. Both clusters must be non-empty, otherwise the mean
// would divide by zero and ErrEmptyCluster is returned.
func Distance(c1, c2 *Cluster) (float64, error) {
	if c1.Len() == 0 || c2.Len() == 0 {
		return 0, ErrEmptyCluster
	}
	sum := 0.0
	for _, p := range c1.pts {
		for _, q := range c2.pts {
			sum += geom.Distance(p, q)
		}
	}
	return sum / float64(c1.Len()*c2.Len()), nil
}

// FindNeighbours scans every unordered pair of clusters in col and returns
// the indices (a, b), a < b, of the pair with the smallest average-linkage
// distance. The scan is index-ascending, outer then inner, and the
// comparison is strict, so the first pair to reach the minimum wins ties.
// This is the dominant cost of a clustering run: O(k²) pairs, each costing
// the product of the two cluster sizes. No spatial index is used; the tool
// is a batch analysis and the full scan keeps results exactly reproducible.
func FindNeighbours(col *Collection) (int, int, error) {
	if col.Len() < 2 {
		return 0, 0, ErrTooFewClusters
	}
	bestA, bestB := -1, -1
	bestDist := 0.0
	for i := 0; i < col.Len(); i++ {
		for j := i + 1; j < col.Len(); j++ {
			d, err := Distance(col.At(i), col.At(j))
			if err != nil {
				return 0, 0, err
			}
			if bestA < 0 || d < bestDist {
				bestA, bestB, bestDist = i, j, d
			}
		}
	}
	return bestA, bestB, nil
}
