package avglink

import "testing"

func TestMergeQueue_OrderedPop(t *testing.T) {
	q := newMergeQueue()
	q.insert(mergeCandidate{hi: 4, lo: 2, avg: 0.9})
	q.insert(mergeCandidate{hi: 3, lo: 0, avg: 0.1})
	q.insert(mergeCandidate{hi: 2, lo: 1, avg: 0.5})

	want := []mergeCandidate{
		{hi: 3, lo: 0, avg: 0.1},
		{hi: 2, lo: 1, avg: 0.5},
		{hi: 4, lo: 2, avg: 0.9},
	}
	for i, w := range want {
		got, ok := q.popMin()
		if !ok {
			t.Fatalf("popMin %d: queue empty", i)
		}
		if got != w {
			t.Errorf("popMin %d = %+v, want %+v", i, got, w)
		}
	}
	if _, ok := q.popMin(); ok {
		t.Error("popMin on empty queue reported ok")
	}
}

func TestMergeQueue_TieBreakOnIndices(t *testing.T) {
	q := newMergeQueue()
	// All the same distance: order must be (hi asc, lo asc).
	q.insert(mergeCandidate{hi: 3, lo: 1, avg: 0.5})
	q.insert(mergeCandidate{hi: 2, lo: 1, avg: 0.5})
	q.insert(mergeCandidate{hi: 3, lo: 0, avg: 0.5})
	q.insert(mergeCandidate{hi: 2, lo: 0, avg: 0.5})

	want := []mergeCandidate{
		{hi: 2, lo: 0, avg: 0.5},
		{hi: 2, lo: 1, avg: 0.5},
		{hi: 3, lo: 0, avg: 0.5},
		{hi: 3, lo: 1, avg: 0.5},
	}
	for i, w := range want {
		if got, _ := q.popMin(); got != w {
			t.Errorf("popMin %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestMergeQueue_RemoveByKey(t *testing.T) {
	q := newMergeQueue()
	q.insert(mergeCandidate{hi: 1, lo: 0, avg: 0.3})
	q.insert(mergeCandidate{hi: 2, lo: 0, avg: 0.7})

	if !q.remove(mergeCandidate{hi: 1, lo: 0, avg: 0.3}) {
		t.Error("remove of present candidate reported absent")
	}
	if q.remove(mergeCandidate{hi: 1, lo: 0, avg: 0.3}) {
		t.Error("second remove reported present")
	}
	// A matching pair under a different key is a different entry.
	if q.remove(mergeCandidate{hi: 2, lo: 0, avg: 0.1}) {
		t.Error("remove with stale key reported present")
	}
	if q.len() != 1 {
		t.Errorf("len = %d, want 1", q.len())
	}
}

func TestMergeQueue_UniqueKeys(t *testing.T) {
	q := newMergeQueue()
	c := mergeCandidate{hi: 5, lo: 3, avg: 0.2}
	q.insert(c)
	q.insert(c)
	if q.len() != 1 {
		t.Errorf("len = %d after duplicate insert, want 1", q.len())
	}
}
