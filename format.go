package avglink

import (
	"fmt"
	"strings"
)

// FormatTree renders a dendrogram as an indented multi-line string for
// debugging. Each node is placed one column per level below the root, with
// dashes marking the drop from its parent:
//
//	branch level=2 weight=3.5
//	-branch level=1 weight=1.5
//	 -leaf a weight=0.5
//	 -leaf b weight=1
//	--leaf c weight=2
//
// Presentation only; it consumes the read-only Node API and carries no
// correctness obligations.
func FormatTree(root *Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	writeNode(&b, root, root.Level(), 0, false)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, maxLevel, parentLevel int, hasParent bool) {
	if maxLevel > n.Level() {
		if hasParent {
			for i := maxLevel; i > parentLevel; i-- {
				b.WriteByte(' ')
			}
			for i := parentLevel; i > n.Level(); i-- {
				b.WriteByte('-')
			}
		} else {
			for i := maxLevel; i > n.Level(); i-- {
				b.WriteByte(' ')
			}
		}
	}
	if n.IsLeaf() {
		fmt.Fprintf(b, "leaf %s weight=%g\n", n.Name(), n.TotalWeight())
		return
	}
	fmt.Fprintf(b, "branch level=%d weight=%g\n", n.Level(), n.TotalWeight())
	writeNode(b, n.FirstChild(), maxLevel, n.Level(), true)
	writeNode(b, n.SecondChild(), maxLevel, n.Level(), true)
}
