package avglink

import "testing"

func TestFormatTree(t *testing.T) {
	a := MakeLeaf("a", 0.5)
	b := MakeLeaf("b", 1)
	ab := mustBranch(t, a, b)
	c := MakeLeaf("c", 2)
	root := mustBranch(t, ab, c)

	want := "branch level=2 weight=3.5\n" +
		"-branch level=1 weight=1.5\n" +
		" -leaf a weight=0.5\n" +
		" -leaf b weight=1\n" +
		"--leaf c weight=2\n"
	if got := FormatTree(root); got != want {
		t.Errorf("FormatTree:\n%q\nwant:\n%q", got, want)
	}

	// Node.String is the same rendering.
	if root.String() != want {
		t.Error("String() differs from FormatTree()")
	}
}

func TestFormatTree_Leaf(t *testing.T) {
	if got := FormatTree(MakeLeaf("solo", 3)); got != "leaf solo weight=3\n" {
		t.Errorf("FormatTree = %q", got)
	}
}

func TestFormatTree_Nil(t *testing.T) {
	if got := FormatTree(nil); got != "" {
		t.Errorf("FormatTree(nil) = %q, want empty", got)
	}
}
