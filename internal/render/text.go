// Package render turns a cluster collection into human-readable output:
// plain text on a writer, a PNG scatter via gonum/plot, or an interactive
// HTML scatter via go-echarts.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/cluster.report/internal/cluster"
)

// WriteClusters writes one line per cluster: "cluster N: id[x,y] id[x,y] ...".
func WriteClusters(w io.Writer, col *cluster.Collection) error {
	for i := 0; i < col.Len(); i++ {
		if err := writeCluster(w, i, col.At(i)); err != nil {
			return err
		}
	}
	return nil
}

func writeCluster(w io.Writer, idx int, c *cluster.Cluster) error {
	parts := make([]string, c.Len())
	for i, p := range c.Points() {
		parts[i] = p.String()
	}
	_, err := fmt.Fprintf(w, "cluster %d: %s\n", idx, strings.Join(parts, " "))
	return err
}

// WriteSummaries writes a per-cluster metrics table: centroid, bounding
// box, mean radius about the centroid, and point count.
func WriteSummaries(w io.Writer, col *cluster.Collection) error {
	for i := 0; i < col.Len(); i++ {
		s, err := cluster.Summarize(col.At(i))
		if err != nil {
			return fmt.Errorf("cluster %d: %w", i, err)
		}
		_, err = fmt.Fprintf(w, "cluster %d: points=%d centroid=(%.3f,%.3f) bbox=[%g,%g]x[%g,%g] mean_radius=%.3f\n",
			i, s.Points, s.CentroidX, s.CentroidY, s.MinX, s.MaxX, s.MinY, s.MaxY, s.MeanRadius)
		if err != nil {
			return err
		}
	}
	return nil
}
