package avglink

import (
	"fmt"
	"sort"
)

// Node is one node of a dendrogram, the binary tree recording the merge
// history of the clustering. A Node is either a leaf holding a single item or
// a branch owning exactly two children; the two variants share one type so
// traversal code never branches on a node kind beyond IsLeaf.
//
// Nodes are immutable once built. MakeBranch is the only place tree
// invariants are enforced; everything downstream treats nodes as read-only.
type Node struct {
	genes  map[string]struct{}
	name   string // set for leaves only
	first  *Node
	second *Node
	weight float64
	level  int
}

// MakeLeaf creates a leaf node for a single named item. weight is the sum of
// the item's distances to all other items; it influences only the dendrogram
// sort order, never merge selection.
func MakeLeaf(name string, weight float64) *Node {
	return &Node{
		genes:  map[string]struct{}{name: {}},
		name:   name,
		weight: weight,
	}
}

// MakeBranch creates a branch owning the two given subtrees. The branch's
// item set is the disjoint union of its children's sets; any overlap means a
// malformed tree or duplicated input and fails with ErrDuplicateItem naming
// the shared items. The stored first child is the one with the lower (or
// equal) average weight, which fixes the traversal order regardless of
// argument order.
func MakeBranch(first, second *Node) (*Node, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: branch requires two children", ErrInvalidArgument)
	}

	genes := make(map[string]struct{}, len(first.genes)+len(second.genes))
	for g := range first.genes {
		genes[g] = struct{}{}
	}
	for g := range second.genes {
		genes[g] = struct{}{}
	}
	if len(genes) != len(first.genes)+len(second.genes) {
		var shared []string
		for g := range first.genes {
			if _, ok := second.genes[g]; ok {
				shared = append(shared, g)
			}
		}
		sort.Strings(shared)
		return nil, fmt.Errorf("%w: %v", ErrDuplicateItem, shared)
	}

	level := first.level
	if second.level > level {
		level = second.level
	}

	n := &Node{
		genes:  genes,
		weight: first.weight + second.weight,
		level:  level + 1,
	}
	if first.AverageWeight() <= second.AverageWeight() {
		n.first, n.second = first, second
	} else {
		n.first, n.second = second, first
	}
	return n, nil
}

// IsLeaf reports whether the node holds a single item.
func (n *Node) IsLeaf() bool { return n.first == nil }

// Name returns the item name for a leaf, or "" for a branch.
func (n *Node) Name() string { return n.name }

// GeneCount returns the number of items under this node.
func (n *Node) GeneCount() int { return len(n.genes) }

// Genes returns the names of all items under this node, sorted.
func (n *Node) Genes() []string {
	names := make([]string, 0, len(n.genes))
	for g := range n.genes {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// HasGene reports whether the named item is under this node.
func (n *Node) HasGene(name string) bool {
	_, ok := n.genes[name]
	return ok
}

// TotalWeight returns the sum of the weights of all leaves under this node.
func (n *Node) TotalWeight() float64 { return n.weight }

// AverageWeight returns the average leaf weight, the node sort key.
func (n *Node) AverageWeight() float64 { return n.weight / float64(len(n.genes)) }

// Level is the node's height above the leaves: 0 for a leaf, one more than
// the higher child for a branch.
func (n *Node) Level() int { return n.level }

// FirstChild returns the child with the lower average weight, or nil for a
// leaf.
func (n *Node) FirstChild() *Node { return n.first }

// SecondChild returns the child with the higher average weight, or nil for a
// leaf.
func (n *Node) SecondChild() *Node { return n.second }

// Walk visits the subtree depth first, fully visiting the first child before
// the second. Combined with the canonical child ordering this yields a
// stable leaf order, the one used to reorder the distance matrix.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	if n.first != nil {
		n.first.Walk(fn)
		n.second.Walk(fn)
	}
}

// LeafNames returns the item names in canonical traversal order.
func (n *Node) LeafNames() []string {
	names := make([]string, 0, len(n.genes))
	n.Walk(func(c *Node) {
		if c.IsLeaf() {
			names = append(names, c.name)
		}
	})
	return names
}

// String renders the subtree as an indented multi-line dump.
func (n *Node) String() string { return FormatTree(n) }
