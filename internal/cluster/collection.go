package cluster

// Collection is an ordered, indexable sequence of clusters. It owns every
// cluster it holds and, transitively, every point inside them; removal
// clears the departing cluster's storage.
type Collection struct {
	clusters []*Cluster
}

// NewCollection returns an empty collection with room for capacity clusters.
func NewCollection(capacity int) *Collection {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection{clusters: make([]*Cluster, 0, capacity)}
}

// Len returns the number of clusters in the collection.
func (col *Collection) Len() int { return len(col.clusters) }

// At returns the cluster at index i.
func (col *Collection) At(i int) *Cluster { return col.clusters[i] }

// Append adds c at the end of the collection.
func (col *Collection) Append(c *Cluster) {
	col.clusters = append(col.clusters, c)
}

// Remove deletes the cluster at idx, clearing its storage and shifting
// every cluster after it one position left so relative order is preserved.
// Returns the new count. A bad index yields ErrIndexOutOfRange, which is a
// bug in the caller, not a runtime condition to recover from.
func (col *Collection) Remove(idx int) (int, error) {
	if idx < 0 || idx >= len(col.clusters) {
		return len(col.clusters), ErrIndexOutOfRange
	}
	col.clusters[idx].Clear()
	copy(col.clusters[idx:], col.clusters[idx+1:])
	col.clusters[len(col.clusters)-1] = nil
	col.clusters = col.clusters[:len(col.clusters)-1]
	return len(col.clusters), nil
}

// TotalPoints returns the number of points across all clusters.
func (col *Collection) TotalPoints() int {
	n := 0
	for _, c := range col.clusters {
		n += c.Len()
	}
	return n
}
