// Package geom provides the basic point type and distance measure used by
// the clustering pipeline. Coordinates live in an abstract 2-D plane; the
// tool does not care about units.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a labeled position in the plane. Points are immutable once
// created; identity is the ID, which well-formed input keeps unique
// (the loader's responsibility, not enforced here).
type Point struct {
	ID  int
	Vec r2.Vec
}

// NewPoint builds a point from an id and raw coordinates.
func NewPoint(id int, x, y float64) Point {
	return Point{ID: id, Vec: r2.Vec{X: x, Y: y}}
}

// X returns the point's horizontal coordinate.
func (p Point) X() float64 { return p.Vec.X }

// Y returns the point's vertical coordinate.
func (p Point) Y() float64 { return p.Vec.Y }

// String renders the point in the tool's text form, id[x,y].
func (p Point) String() string {
	return fmt.Sprintf("%d[%g,%g]", p.ID, p.Vec.X, p.Vec.Y)
}

// Distance returns the Euclidean distance between two points.
// Symmetric; zero for coincident coordinates.
func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(p.Vec, q.Vec))
}
