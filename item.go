package avglink

import "fmt"

// Item is one named observation vector to cluster. Items are produced by an
// external data source and treated as immutable once handed to this package.
// Vectors are expected to be normalized already; this package only
// re-validates shape, not value ranges.
type Item struct {
	Name   string
	Values []float64
}

// validateItems re-checks the data-source contract: a non-empty set of
// uniquely named, equal-length, non-empty vectors.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items to cluster", ErrData)
	}

	dims := len(items[0].Values)
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if len(it.Values) == 0 {
			return fmt.Errorf("%w: item %q has no observations", ErrData, it.Name)
		}
		if len(it.Values) != dims {
			return fmt.Errorf("%w: item %q has %d observations, item %q has %d",
				ErrDimensionMismatch, it.Name, len(it.Values), items[0].Name, dims)
		}
		if _, dup := seen[it.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, it.Name)
		}
		seen[it.Name] = struct{}{}
	}
	return nil
}
