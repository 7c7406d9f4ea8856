package avglink

import (
	"fmt"
	"strings"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DistanceMatrix holds the pairwise dissimilarities of a set of named items.
// The matrix is symmetric with a zero diagonal, so only the lower triangle is
// materialized: row i stores the i entries for columns j < i. After
// normalization every stored value lies in [0, 1].
type DistanceMatrix struct {
	names []string
	rows  [][]float64
}

// NewDistanceMatrix computes the pairwise distance matrix for items using the
// given metric and normalizes it by the global maximum. A nil metric defaults
// to RMSMetric. workers controls how many goroutines share the O(n²·d)
// distance computation; values <= 1 compute sequentially. The result is
// identical regardless of workers.
//
// Fails with ErrData for an empty item set or empty vectors,
// ErrDimensionMismatch for vectors of differing length, and ErrDuplicateName
// for repeated item names.
func NewDistanceMatrix(items []Item, metric DistanceMetric, workers int) (*DistanceMatrix, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if metric == nil {
		metric = RMSMetric{}
	}

	n := len(items)
	m := &DistanceMatrix{
		names: make([]string, n),
		rows:  make([][]float64, n),
	}
	for i, it := range items {
		m.names[i] = it.Name
		m.rows[i] = make([]float64, i)
	}

	fillRows := func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < i; j++ {
				m.rows[i][j] = metric.Distance(items[i].Values, items[j].Values)
			}
		}
	}

	if workers <= 1 || n <= 1 {
		fillRows(0, n)
	} else {
		// Shard rows across workers. Row ranges don't overlap, so writes
		// need no synchronization.
		var wg sync.WaitGroup
		rowsPerWorker := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * rowsPerWorker
			end := start + rowsPerWorker
			if end > n {
				end = n
			}
			if start >= n {
				break
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				fillRows(start, end)
			}(start, end)
		}
		wg.Wait()
	}

	m.Normalize()
	return m, nil
}

// Len returns the number of items in the matrix.
func (m *DistanceMatrix) Len() int { return len(m.names) }

// Name returns the item name at index i.
func (m *DistanceMatrix) Name(i int) (string, error) {
	if i < 0 || i >= len(m.names) {
		return "", fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, len(m.names))
	}
	return m.names[i], nil
}

// Names returns a copy of all item names in matrix order.
func (m *DistanceMatrix) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Get returns the distance between items i and j. The lookup is symmetric:
// Get(i, j) == Get(j, i), and Get(i, i) is 0 by definition.
func (m *DistanceMatrix) Get(i, j int) (float64, error) {
	n := len(m.names)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: indices (%d, %d) out of range [0, %d)", ErrInvalidArgument, i, j, n)
	}
	return m.at(i, j), nil
}

// at is the unchecked symmetric lookup used internally.
func (m *DistanceMatrix) at(i, j int) float64 {
	switch {
	case i > j:
		return m.rows[i][j]
	case j > i:
		return m.rows[j][i]
	default:
		return 0
	}
}

// rowSum returns the sum of distances from item i to every other item, the
// weight of item i's dendrogram leaf.
func (m *DistanceMatrix) rowSum(i int) float64 {
	var sum float64
	for j := range m.names {
		sum += m.at(i, j)
	}
	return sum
}

// Normalize scales every entry by the global maximum so that all values lie
// in [0, 1]. If the maximum is 0 (all items identical) the matrix is left
// unchanged to avoid dividing by zero. NewDistanceMatrix already applies
// this; calling it again is a no-op since the maximum becomes 1.
func (m *DistanceMatrix) Normalize() {
	var maxVal float64
	for _, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		if rowMax := floats.Max(row); rowMax > maxVal {
			maxVal = rowMax
		}
	}
	if maxVal <= 0 {
		return
	}
	for _, row := range m.rows {
		floats.Scale(1/maxVal, row)
	}
}

// Reorder returns a new matrix whose row i is the receiver's row perm[i]
// (and columns likewise), leaving the receiver untouched. perm must be a
// bijection over [0, n): wrong length, out-of-range values, or duplicates
// fail with ErrInvalidPermutation. Used to align the matrix with the
// dendrogram's canonical leaf order.
func (m *DistanceMatrix) Reorder(perm []int) (*DistanceMatrix, error) {
	n := len(m.names)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrInvalidPermutation, len(perm), n)
	}
	used := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: value %d out of range [0, %d)", ErrInvalidPermutation, p, n)
		}
		if used[p] {
			return nil, fmt.Errorf("%w: value %d appears more than once", ErrInvalidPermutation, p)
		}
		used[p] = true
	}

	out := &DistanceMatrix{
		names: make([]string, n),
		rows:  make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		out.names[i] = m.names[perm[i]]
		out.rows[i] = make([]float64, i)
		for j := 0; j < i; j++ {
			out.rows[i][j] = m.at(perm[i], perm[j])
		}
	}
	return out, nil
}

// String dumps the lower triangle row by row for debugging.
func (m *DistanceMatrix) String() string {
	var b strings.Builder
	for i, row := range m.rows {
		fmt.Fprintf(&b, "%s:", m.names[i])
		for _, v := range row {
			fmt.Fprintf(&b, " %.4f", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
