package topology

import "slices"

// Classification holds the node id sets produced by the pruning analysis.
// All three are sorted subsets of the adjacency index set.
type Classification struct {
	DeadEnds []string `json:"dead_ends" bson:"dead_ends"`
	Springs  []string `json:"springs" bson:"springs"`
	Isolates []string `json:"isolates" bson:"isolates"`
}

// DeadEnds identifies the nodes with no sustainable outgoing path by
// iterative pruning on a working copy of m.
//
// Each round recomputes, from scratch, the set of nodes whose outgoing row
// is entirely empty, then clears the matrix columns of every member: an
// edge into a dead-end no longer counts as outgoing capacity for its
// origin. The candidate set grows monotonically and the loop stops at the
// first round that adds nothing, after at most Size() rounds.
//
// A self-loop occupies its node's diagonal cell and therefore keeps the
// row non-empty: a node whose only edge is a self-loop is never classified
// as a dead-end.
func DeadEnds(m *Matrix) []string {
	w := m.Clone()

	candidates := w.emptyRows()
	if len(candidates) == 0 {
		return nil
	}

	for {
		for _, id := range candidates {
			w.zeroColumn(w.index[id])
		}
		next := w.emptyRows()
		if slices.Equal(next, candidates) {
			return candidates
		}
		candidates = next
	}
}

// Springs identifies the nodes with no sustainable incoming path. It is
// the symmetric procedure to [DeadEnds]: a node whose incoming column is
// entirely empty is a tentative spring, and confirmed springs have their
// rows cleared, removing the outgoing edges that no retained source can
// ever reach.
func Springs(m *Matrix) []string {
	w := m.Clone()

	candidates := w.emptyCols()
	if len(candidates) == 0 {
		return nil
	}

	for {
		for _, id := range candidates {
			w.zeroRow(w.index[id])
		}
		next := w.emptyCols()
		if slices.Equal(next, candidates) {
			return candidates
		}
		candidates = next
	}
}

// Classify runs both pruning passes and intersects them. Nodes with zero
// incident edges inside the index set are trivially both dead-end and
// spring, hence isolates.
func Classify(m *Matrix) Classification {
	c := Classification{
		DeadEnds: DeadEnds(m),
		Springs:  Springs(m),
	}
	c.Isolates = intersectSorted(c.DeadEnds, c.Springs)
	return c
}

// emptyRows returns the sorted ids of nodes whose outgoing row holds no
// edge in the current matrix state.
func (m *Matrix) emptyRows() []string {
	var out []string
	for i, id := range m.ids {
		if m.rowEmpty(i) {
			out = append(out, id)
		}
	}
	return out
}

// emptyCols returns the sorted ids of nodes whose incoming column holds
// no edge in the current matrix state.
func (m *Matrix) emptyCols() []string {
	var out []string
	for j, id := range m.ids {
		if m.colEmpty(j) {
			out = append(out, id)
		}
	}
	return out
}

// intersectSorted intersects two sorted string slices.
func intersectSorted(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
