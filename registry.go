package avglink

// clusterRecord is one active cluster slot: its current dendrogram plus its
// accumulated and cached average distances to every lower-indexed slot. The
// arrays are ragged; by convention all pair accesses go through the higher
// slot. Totals are accumulated and the average derived from them so repeated
// merges don't compound rounding error.
type clusterRecord struct {
	node  *Node
	total []float64
	avg   []float64
}

// newLeafRecord seeds slot i from the distance matrix. All slots start as
// single-item leaves, so the initial averages equal the raw pairwise
// distances. The leaf weight is the item's matrix row sum, which drives only
// the dendrogram sort order.
func newLeafRecord(i int, m *DistanceMatrix) *clusterRecord {
	r := &clusterRecord{
		node:  MakeLeaf(m.names[i], m.rowSum(i)),
		total: make([]float64, i),
		avg:   make([]float64, i),
	}
	for j := 0; j < i; j++ {
		d := m.at(i, j)
		r.total[j] = d
		r.avg[j] = d
	}
	return r
}

func (r *clusterRecord) geneCount() int { return r.node.GeneCount() }

// addDistance accumulates a merged-in total distance for the pair (this
// slot, lower) and refreshes the cached average. otherSize is the item count
// of the slot on the other side of the pair.
func (r *clusterRecord) addDistance(lower int, otherTotal float64, otherSize int) {
	r.total[lower] += otherTotal
	r.avg[lower] = r.total[lower] / float64(r.geneCount()*otherSize)
}

// clearSlot zeroes the pair entries for a slot that was merged away, so no
// stale distance can be read later.
func (r *clusterRecord) clearSlot(lower int) {
	r.total[lower] = 0
	r.avg[lower] = 0
}
