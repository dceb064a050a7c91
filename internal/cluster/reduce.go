package cluster

// Reduce runs the agglomerative loop over col: while more than target
// clusters remain, find the mutually closest pair, merge the higher-indexed
// cluster into the lower-indexed one, and remove the absorbed cluster. The
// surviving cluster keeps its position and ends up sorted by point id.
//
// A target at or above the current count leaves the collection untouched.
// The loop also stops once a single cluster remains. There is no rollback:
// a merge, once started, always completes.
func Reduce(col *Collection, target int) error {
	if target < 1 {
		return ErrBadTarget
	}
	for col.Len() > target && col.Len() > 1 {
		a, b, err := FindNeighbours(col)
		if err != nil {
			return err
		}
		Merge(col.At(a), col.At(b))
		if _, err := col.Remove(b); err != nil {
			return err
		}
	}
	return nil
}
