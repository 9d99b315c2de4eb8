package topology

import (
	"slices"

	"github.com/transitlab/netlint/pkg/network"
)

// Matrix is a square boolean adjacency relation over the node ids that
// appear as an endpoint of at least one section. Parallel sections
// collapse to a single entry; the relation carries no multiplicity.
//
// The index set is sorted, so all derived reports are deterministic.
// Endpoint ids with no corresponding declared node still enter the index
// set - the builder does not validate references.
type Matrix struct {
	ids   []string
	index map[string]int
	cells [][]bool
}

// BuildAdjacency builds the adjacency relation from sections in a single
// pass. Sections with endpoints not seen before simply extend the index
// set; there is no error path.
func BuildAdjacency(sections []network.Section) *Matrix {
	seen := make(map[string]struct{}, len(sections)*2)
	for _, s := range sections {
		seen[s.Upstream] = struct{}{}
		seen[s.Downstream] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	m := newMatrix(ids)
	for _, s := range sections {
		m.cells[m.index[s.Upstream]][m.index[s.Downstream]] = true
	}
	return m
}

func newMatrix(ids []string) *Matrix {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	cells := make([][]bool, len(ids))
	for i := range cells {
		cells[i] = make([]bool, len(ids))
	}
	return &Matrix{ids: ids, index: index, cells: cells}
}

// Size returns the number of ids in the index set.
func (m *Matrix) Size() int { return len(m.ids) }

// IDs returns a copy of the sorted index set.
func (m *Matrix) IDs() []string { return slices.Clone(m.ids) }

// Has reports whether at least one section goes from u to v. Unknown ids
// report false.
func (m *Matrix) Has(u, v string) bool {
	i, ok := m.index[u]
	if !ok {
		return false
	}
	j, ok := m.index[v]
	if !ok {
		return false
	}
	return m.cells[i][j]
}

// Clone returns an independent copy sharing no cell storage.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.ids)
	for i := range m.cells {
		copy(c.cells[i], m.cells[i])
	}
	return c
}

// Transpose returns a new matrix with every edge reversed.
func (m *Matrix) Transpose() *Matrix {
	t := newMatrix(m.ids)
	for i := range m.cells {
		for j, set := range m.cells[i] {
			if set {
				t.cells[j][i] = true
			}
		}
	}
	return t
}

// rowEmpty reports whether row i holds no true cell. The diagonal counts:
// a self-loop keeps its node's row non-empty.
func (m *Matrix) rowEmpty(i int) bool {
	for _, set := range m.cells[i] {
		if set {
			return false
		}
	}
	return true
}

// colEmpty reports whether column j holds no true cell.
func (m *Matrix) colEmpty(j int) bool {
	for i := range m.cells {
		if m.cells[i][j] {
			return false
		}
	}
	return true
}

// zeroColumn clears every cell in column j.
func (m *Matrix) zeroColumn(j int) {
	for i := range m.cells {
		m.cells[i][j] = false
	}
}

// zeroRow clears every cell in row i.
func (m *Matrix) zeroRow(i int) {
	for j := range m.cells[i] {
		m.cells[i][j] = false
	}
}
