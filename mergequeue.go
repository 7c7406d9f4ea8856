package avglink

import "github.com/google/btree"

// mergeCandidate is a canonicalized unordered pair of active cluster slots:
// hi is always the higher index. The average distance is captured by value
// when the candidate is built, so queue ordering never reads mutable
// registry state; the engine deletes and reinserts candidates whenever their
// distances change.
type mergeCandidate struct {
	hi, lo int
	avg    float64
}

// lessCandidate orders candidates by average distance ascending, then by
// higher index, then by lower index. The index tie-break makes the merge
// sequence fully deterministic when distances tie exactly.
func lessCandidate(a, b mergeCandidate) bool {
	if a.avg != b.avg {
		return a.avg < b.avg
	}
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}

// mergeQueue is the sorted, uniquely-keyed set of candidate merges. It is
// backed by a B-tree rather than a binary heap because every merge must
// delete O(n) arbitrary entries by key; each operation is O(log m) for m
// queued pairs, which keeps the whole clustering at O(n² log n).
type mergeQueue struct {
	tree *btree.BTreeG[mergeCandidate]
}

func newMergeQueue() *mergeQueue {
	return &mergeQueue{tree: btree.NewG(32, lessCandidate)}
}

func (q *mergeQueue) insert(c mergeCandidate) {
	q.tree.ReplaceOrInsert(c)
}

// remove deletes the candidate with the exact same (avg, hi, lo) key.
// Reports whether it was present.
func (q *mergeQueue) remove(c mergeCandidate) bool {
	_, ok := q.tree.Delete(c)
	return ok
}

// popMin removes and returns the minimum-keyed candidate.
func (q *mergeQueue) popMin() (mergeCandidate, bool) {
	return q.tree.DeleteMin()
}

func (q *mergeQueue) len() int {
	return q.tree.Len()
}
