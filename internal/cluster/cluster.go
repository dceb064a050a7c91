// Package cluster implements the agglomerative clustering core: a growable
// point container with explicit capacity management, an ordered collection of
// clusters, the average-linkage distance measure, nearest-pair search, and
// the merge/reduce driver loop.
package cluster

import (
	"errors"
	"sort"

	"github.com/banshee-data/cluster.report/internal/geom"
)

// DefaultGrowthChunk is the fixed number of point slots added whenever a
// cluster's backing storage must grow. Tunable per cluster via NewWithChunk.
const DefaultGrowthChunk = 10

// Sentinel errors for caller misuse. These signal programming errors at the
// call site, not recoverable runtime conditions.
var (
	ErrBadCapacity     = errors.New("cluster: capacity must be non-negative")
	ErrEmptyCluster    = errors.New("cluster: distance over an empty cluster")
	ErrIndexOutOfRange = errors.New("cluster: index out of range")
	ErrTooFewClusters  = errors.New("cluster: need at least two clusters")
	ErrBadTarget       = errors.New("cluster: target count must be positive")
)

// Cluster is an ordered, growable sequence of points. Length and capacity
// are tracked separately: capacity grows monotonically in fixed chunks and
// never shrinks on append, so repeated appends are amortized O(1).
//
// The zero value is an empty cluster with no backing storage.
type Cluster struct {
	pts   []geom.Point // len(pts) is the logical length
	chunk int          // growth increment; DefaultGrowthChunk if 0
}

// New creates an empty cluster with storage preallocated for capacity
// points. capacity 0 allocates nothing.
func New(capacity int) (*Cluster, error) {
	return NewWithChunk(capacity, DefaultGrowthChunk)
}

// NewWithChunk is New with an explicit growth increment.
func NewWithChunk(capacity, chunk int) (*Cluster, error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	if chunk <= 0 {
		chunk = DefaultGrowthChunk
	}
	c := &Cluster{chunk: chunk}
	if capacity > 0 {
		c.pts = make([]geom.Point, 0, capacity)
	}
	return c, nil
}

// Len returns the number of points currently in the cluster.
func (c *Cluster) Len() int { return len(c.pts) }

// Cap returns the cluster's current storage capacity.
func (c *Cluster) Cap() int { return cap(c.pts) }

// At returns the point at index i. Insertion order is preserved until
// SortByID reorders the cluster.
func (c *Cluster) At(i int) geom.Point { return c.pts[i] }

// Points returns the cluster's points as a slice. The slice aliases the
// cluster's storage; callers must not mutate it.
func (c *Cluster) Points() []geom.Point { return c.pts }

// Clear releases the cluster's storage and resets it to the empty state
// (length 0, capacity 0). Idempotent.
func (c *Cluster) Clear() {
	c.pts = nil
}

// Resize grows the backing storage to hold at least newCap points. A
// newCap at or below the current capacity is a no-op: capacity never
// shrinks through this operation. Existing points keep their order.
func (c *Cluster) Resize(newCap int) error {
	if newCap < 0 {
		return ErrBadCapacity
	}
	if newCap <= cap(c.pts) {
		return nil
	}
	grown := make([]geom.Point, len(c.pts), newCap)
	copy(grown, c.pts)
	c.pts = grown
	return nil
}

// Append adds p at the end of the cluster, growing capacity by the chunk
// increment first when the cluster is full. All prior points keep their
// positions.
func (c *Cluster) Append(p geom.Point) {
	if len(c.pts) == cap(c.pts) {
		chunk := c.chunk
		if chunk <= 0 {
			chunk = DefaultGrowthChunk
		}
		// Resize only fails on negative capacity, which cannot happen here.
		_ = c.Resize(cap(c.pts) + chunk)
	}
	c.pts = append(c.pts, p)
}

// SortByID reorders the cluster's points into ascending id order. Ids are
// unique in well-formed input, so stability for duplicates is not promised.
func (c *Cluster) SortByID() {
	sort.Slice(c.pts, func(i, j int) bool {
		return c.pts[i].ID < c.pts[j].ID
	})
}

// Merge appends every point of src into dst in src's order and then sorts
// dst by id. src itself is left untouched; the caller removes it from its
// collection afterwards.
func Merge(dst, src *Cluster) {
	// Never fails: the requested capacity is non-negative.
	_ = dst.Resize(dst.Len() + src.Len())
	for _, p := range src.pts {
		dst.Append(p)
	}
	dst.SortByID()
}
