package avglink

import "errors"

var (
	// ErrData indicates an empty or otherwise malformed item set.
	ErrData = errors.New("avglink: malformed item data")
	// ErrDimensionMismatch indicates item vectors of differing length.
	ErrDimensionMismatch = errors.New("avglink: observation vectors differ in length")
	// ErrDuplicateName indicates two items share a name.
	ErrDuplicateName = errors.New("avglink: duplicate item name")
	// ErrDuplicateItem indicates branch construction found the same item in
	// both subtrees, signaling a malformed dendrogram or duplicated input.
	ErrDuplicateItem = errors.New("avglink: item present in both subtrees")
	// ErrInvalidPermutation indicates a reorder permutation is not a
	// bijection over the matrix indices.
	ErrInvalidPermutation = errors.New("avglink: invalid reorder permutation")
	// ErrIntegrity indicates a defensive invariant check failed, such as a
	// leaf-count mismatch while traversing the finished dendrogram.
	ErrIntegrity = errors.New("avglink: dendrogram integrity violation")
	// ErrInvalidArgument indicates programmer-level misuse, such as a nil or
	// empty dependency passed to a constructor.
	ErrInvalidArgument = errors.New("avglink: invalid argument")
	// ErrAborted indicates a clustering run was cancelled. The partially
	// built dendrogram is discarded and never exposed.
	ErrAborted = errors.New("avglink: clustering aborted")
)
