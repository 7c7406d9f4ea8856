// Package avglink implements hierarchical average-linkage clustering.
//
// Given a set of named items each carrying an equal-length observation
// vector, it computes normalized pairwise dissimilarities, repeatedly merges
// the two most similar clusters, and produces a dendrogram whose depth-first
// leaf order groups similar items together. The distance matrix can be
// reordered to that leaf order for rendering.
//
// Basic usage:
//
//	result, err := avglink.Cluster(ctx, items, avglink.DefaultConfig())
//	// result.Root is the dendrogram
//	// result.Matrix is the distance matrix in dendrogram leaf order
//	// result.Order[k] is the original index of the k-th reordered row
//
// For step-level control, build the pieces directly:
//
//	m, err := avglink.NewDistanceMatrix(items, avglink.RMSMetric{}, 0)
//	e, err := avglink.NewEngine(m)
//	err = e.Run(ctx)
//	root, err := e.Root()
//
// # Complexity
//
// The candidate merges live in an ordered, uniquely-keyed set, so each of
// the n-1 merges removes, recomputes, and reinserts O(n) entries at O(log n)
// apiece: O(n² log n) overall, the theoretical floor for average-linkage
// clustering. Memory is O(n²) for the distance and accumulator arrays.
//
// The merge loop is deterministic: exact distance ties break on cluster
// slot indices, so the same item set yields the same dendrogram in any
// input order.
package avglink
