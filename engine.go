package avglink

import (
	"context"
	"fmt"
	"strings"
)

type engineState int

const (
	stateMerging engineState = iota
	stateTerminated
	stateAborted
)

// Engine runs average-linkage clustering over a distance matrix. It owns an
// array of active cluster slots and a sorted queue of candidate merges, and
// repeatedly combines the two most similar clusters until one remains.
//
// An Engine is single-threaded: at most one Run (or Step sequence) may be in
// flight, and nothing else may touch the engine while it is.
type Engine struct {
	matrix *DistanceMatrix
	// records[i] is the active cluster at slot i, nil once merged away.
	// Slots are tombstoned rather than removed so every other slot's ragged
	// distance arrays keep their indices.
	records   []*clusterRecord
	queue     *mergeQueue
	state     engineState
	merges    int
	distances []float64
}

// NewEngine seeds an engine from a built, normalized distance matrix: one
// leaf cluster per item and one queued candidate per unordered slot pair.
// A nil or empty matrix fails with ErrInvalidArgument.
func NewEngine(m *DistanceMatrix) (*Engine, error) {
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("%w: engine requires a non-empty distance matrix", ErrInvalidArgument)
	}

	n := m.Len()
	e := &Engine{
		matrix:  m,
		records: make([]*clusterRecord, n),
		queue:   newMergeQueue(),
	}
	// Records must exist before the queue is seeded: candidates carry the
	// cached averages by value.
	for i := 0; i < n; i++ {
		e.records[i] = newLeafRecord(i, m)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			e.queue.insert(e.candidateFor(i, j))
		}
	}
	return e, nil
}

// candidateFor builds the queue key for the active slot pair (x, y) from the
// currently cached average distance.
func (e *Engine) candidateFor(x, y int) mergeCandidate {
	if x < y {
		x, y = y, x
	}
	return mergeCandidate{hi: x, lo: y, avg: e.records[x].avg[y]}
}

// totalBetween returns the accumulated total distance for the active slot
// pair (x, y).
func (e *Engine) totalBetween(x, y int) float64 {
	if x < y {
		x, y = y, x
	}
	return e.records[x].total[y]
}

// Step performs one merge: pop the minimum candidate, drop every queue entry
// touching either side, combine the dendrograms, fold the absorbed slot's
// distance totals into the survivor, tombstone the absorbed slot, and
// requeue the survivor's pairs with fresh averages. An empty queue moves the
// engine to its terminal state; further calls are no-ops.
func (e *Engine) Step() error {
	switch e.state {
	case stateAborted:
		return fmt.Errorf("%w: engine is poisoned", ErrAborted)
	case stateTerminated:
		return nil
	}

	next, ok := e.queue.popMin()
	if !ok {
		e.state = stateTerminated
		return nil
	}
	a, b := next.hi, next.lo

	// Invalidate every candidate touching either cluster before anything
	// changes: the keys in the queue match the averages cached right now,
	// and those averages are about to move.
	for c, rec := range e.records {
		if rec == nil || c == a || c == b {
			continue
		}
		e.queue.remove(e.candidateFor(a, c))
		e.queue.remove(e.candidateFor(b, c))
	}

	branch, err := MakeBranch(e.records[a].node, e.records[b].node)
	if err != nil {
		// Overlapping subtrees mean the registry is corrupt; nothing built
		// from here on could be trusted.
		e.state = stateAborted
		return err
	}
	e.records[a].node = branch

	// Average-linkage update: fold cluster b's totals into a's pairs. Both
	// contributions are read before b's data is cleared below.
	for c, rec := range e.records {
		if rec == nil || c == a || c == b {
			continue
		}
		bc := e.totalBetween(b, c)
		if c < a {
			e.records[a].addDistance(c, bc, rec.geneCount())
		} else {
			rec.addDistance(a, bc, e.records[a].geneCount())
		}
	}

	// Tombstone b and scrub its entries from the higher active slots.
	e.records[b] = nil
	for c := b + 1; c < len(e.records); c++ {
		if e.records[c] != nil {
			e.records[c].clearSlot(b)
		}
	}

	// Requeue the merged cluster's pairs, keyed on the fresh averages.
	for c, rec := range e.records {
		if rec == nil || c == a {
			continue
		}
		e.queue.insert(e.candidateFor(a, c))
	}

	e.merges++
	e.distances = append(e.distances, next.avg)
	return nil
}

// Run merges until a single cluster remains, checking ctx between steps.
// Cancellation poisons the engine: the partially built dendrogram violates
// the single-cluster postcondition and is never exposed, and every later
// call fails with ErrAborted. Running an already terminated engine is a
// no-op; the dendrogram is never recomputed.
func (e *Engine) Run(ctx context.Context) error {
	if e.state == stateAborted {
		return fmt.Errorf("%w: engine is poisoned", ErrAborted)
	}
	for e.state != stateTerminated {
		if err := ctx.Err(); err != nil {
			e.state = stateAborted
			return fmt.Errorf("%w: %v", ErrAborted, err)
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Merges returns the number of merges performed so far.
func (e *Engine) Merges() int { return e.merges }

// MergeDistances returns the average distance of each merge in order. Two
// runs over the same item set produce the same sequence regardless of input
// order.
func (e *Engine) MergeDistances() []float64 {
	out := make([]float64, len(e.distances))
	copy(out, e.distances)
	return out
}

// Root returns the finished dendrogram. It fails with ErrIntegrity before
// the engine terminates (or if more than one slot is somehow still active)
// and with ErrAborted after a cancelled run.
func (e *Engine) Root() (*Node, error) {
	switch e.state {
	case stateAborted:
		return nil, fmt.Errorf("%w: run was cancelled", ErrAborted)
	case stateMerging:
		return nil, fmt.Errorf("%w: clustering has not finished", ErrIntegrity)
	}

	var root *Node
	active := 0
	for _, rec := range e.records {
		if rec != nil {
			root = rec.node
			active++
		}
	}
	if active != 1 {
		return nil, fmt.Errorf("%w: %d clusters active after termination, want 1", ErrIntegrity, active)
	}
	return root, nil
}

// LeafOrder returns the permutation mapping canonical dendrogram leaf order
// to original item indices: entry k is the original index of the k-th leaf
// visited depth first. Feeding it to DistanceMatrix.Reorder aligns the
// matrix with the tree. Fails with ErrIntegrity if the traversal does not
// visit every item exactly once.
func (e *Engine) LeafOrder() ([]int, error) {
	root, err := e.Root()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, e.matrix.Len())
	for i, name := range e.matrix.names {
		byName[name] = i
	}

	order := make([]int, 0, e.matrix.Len())
	var walkErr error
	root.Walk(func(n *Node) {
		if walkErr != nil || !n.IsLeaf() {
			return
		}
		i, ok := byName[n.Name()]
		if !ok {
			walkErr = fmt.Errorf("%w: leaf %q is not in the item set", ErrIntegrity, n.Name())
			return
		}
		order = append(order, i)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if len(order) != e.matrix.Len() {
		return nil, fmt.Errorf("%w: traversal visited %d leaves, want %d", ErrIntegrity, len(order), e.matrix.Len())
	}
	return order, nil
}

// String dumps the active slots and pending queue size for debugging.
func (e *Engine) String() string {
	var b strings.Builder
	for i, rec := range e.records {
		if rec == nil {
			continue
		}
		fmt.Fprintf(&b, "%d: %v (%d items)\n", i, rec.node.Genes(), rec.geneCount())
	}
	fmt.Fprintf(&b, "pending merges: %d\n", e.queue.len())
	return b.String()
}
