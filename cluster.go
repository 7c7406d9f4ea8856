package avglink

import (
	"context"
	"fmt"
	"runtime"
)

// Config controls clustering behavior. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// Metric is the distance function used to compare observation vectors.
	// Built-in: RMSMetric, EuclideanMetric, ManhattanMetric. Use
	// DistanceFunc to wrap a custom function. Default: RMSMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used to build the distance
	// matrix. The merge loop itself is always single-threaded. 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{Metric: RMSMetric{}}
}

func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = RMSMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidArgument, cfg.Workers)
	}
	return nil
}

// Result contains the output of a clustering run, ready for rendering.
type Result struct {
	// Root is the finished dendrogram. Read-only.
	Root *Node

	// Order maps canonical leaf order to original item indices: Order[k] is
	// the input index of the k-th leaf in depth-first traversal order.
	Order []int

	// Matrix is the distance matrix reordered to match Root's leaf order,
	// so adjacent rows are similar items.
	Matrix *DistanceMatrix

	// Names holds the item names in reordered matrix row order.
	Names []string
}

// Cluster runs the whole pipeline: validate the items, build and normalize
// the distance matrix, merge to a single dendrogram, and reorder the matrix
// to the tree's canonical leaf order. ctx is checked between merges; on
// cancellation no partial result is returned.
func Cluster(ctx context.Context, items []Item, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	matrix, err := NewDistanceMatrix(items, cfg.Metric, cfg.Workers)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(matrix)
	if err != nil {
		return nil, err
	}
	if err := engine.Run(ctx); err != nil {
		return nil, err
	}

	root, err := engine.Root()
	if err != nil {
		return nil, err
	}
	order, err := engine.LeafOrder()
	if err != nil {
		return nil, err
	}
	sorted, err := matrix.Reorder(order)
	if err != nil {
		return nil, err
	}

	return &Result{
		Root:   root,
		Order:  order,
		Matrix: sorted,
		Names:  sorted.Names(),
	}, nil
}
