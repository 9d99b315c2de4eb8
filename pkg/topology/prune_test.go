package topology

import (
	"slices"
	"testing"

	"github.com/transitlab/netlint/pkg/network"
)

func sec(id, up, down string) network.Section {
	return network.Section{ID: id, Upstream: up, Downstream: down, Length: 1}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		sections     []network.Section
		wantDeadEnds []string
		wantSprings  []string
		wantIsolates []string
	}{
		{
			name:     "Empty",
			sections: nil,
		},
		{
			name: "SingleCycle",
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "C"),
				sec("s3", "C", "A"),
			},
			// Every node lies on a directed cycle: nothing is pruned.
		},
		{
			name: "LinearChain",
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "C"),
				sec("s3", "C", "D"),
			},
			// An acyclic chain collapses entirely from both directions.
			wantDeadEnds: []string{"A", "B", "C", "D"},
			wantSprings:  []string{"A", "B", "C", "D"},
			wantIsolates: []string{"A", "B", "C", "D"},
		},
		{
			name: "CycleWithTail",
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "C"),
				sec("s3", "C", "A"),
				sec("s4", "C", "D"),
			},
			wantDeadEnds: []string{"D"},
		},
		{
			name: "CycleWithFeeder",
			sections: []network.Section{
				sec("s1", "X", "A"),
				sec("s2", "A", "B"),
				sec("s3", "B", "A"),
			},
			wantSprings: []string{"X"},
		},
		{
			name: "TwoComponents",
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "A"),
				sec("s3", "C", "D"),
			},
			wantDeadEnds: []string{"C", "D"},
			wantSprings:  []string{"C", "D"},
			wantIsolates: []string{"C", "D"},
		},
		{
			name: "SelfLoopOnly",
			// Pins the inclusive diagonal policy: a pure self-loop keeps
			// the node's row and column non-empty, so it is never pruned.
			sections: []network.Section{
				sec("s1", "A", "A"),
			},
		},
		{
			name: "SelfLoopOnChainEnd",
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "B"),
			},
			// B keeps out-capacity through its self-loop; A feeds a
			// retained node but nothing feeds A.
			wantSprings: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(BuildAdjacency(tt.sections))
			if !slices.Equal(c.DeadEnds, tt.wantDeadEnds) {
				t.Errorf("DeadEnds = %v, want %v", c.DeadEnds, tt.wantDeadEnds)
			}
			if !slices.Equal(c.Springs, tt.wantSprings) {
				t.Errorf("Springs = %v, want %v", c.Springs, tt.wantSprings)
			}
			if !slices.Equal(c.Isolates, tt.wantIsolates) {
				t.Errorf("Isolates = %v, want %v", c.Isolates, tt.wantIsolates)
			}
		})
	}
}

func TestDeadEndsIdempotent(t *testing.T) {
	// Re-running the identification on the surviving matrix must add
	// nothing: the result is a fixed point.
	sections := []network.Section{
		sec("s1", "A", "B"),
		sec("s2", "B", "C"),
		sec("s3", "C", "A"),
		sec("s4", "C", "D"),
		sec("s5", "D", "E"),
	}
	m := BuildAdjacency(sections)

	first := DeadEnds(m)

	survived := m.Clone()
	for _, id := range first {
		survived.zeroColumn(survived.index[id])
	}
	second := DeadEnds(survived)

	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}
}

func TestDeadEndsMonotonic(t *testing.T) {
	// The candidate set recomputed after each column-clearing round must
	// contain every candidate of the previous round.
	// The chain collapses one node per round, so the candidate set grows
	// across several iterations before the fixed point.
	sections := []network.Section{
		sec("s1", "A", "B"),
		sec("s2", "B", "C"),
		sec("s3", "C", "D"),
		sec("s4", "X", "Y"),
		sec("s5", "Y", "X"),
	}
	w := BuildAdjacency(sections).Clone()

	prev := w.emptyRows()
	for range w.Size() {
		for _, id := range prev {
			w.zeroColumn(w.index[id])
		}
		next := w.emptyRows()
		for _, id := range prev {
			if !slices.Contains(next, id) {
				t.Fatalf("candidate %s dropped between iterations: %v -> %v", id, prev, next)
			}
		}
		if slices.Equal(next, prev) {
			return
		}
		prev = next
	}
	t.Fatalf("no fixed point within %d iterations", w.Size())
}

func TestSpringsIsTransposedDeadEnds(t *testing.T) {
	sections := []network.Section{
		sec("s1", "A", "B"),
		sec("s2", "B", "C"),
		sec("s3", "C", "A"),
		sec("s4", "X", "A"),
		sec("s5", "C", "Y"),
		sec("s6", "Z", "Z"),
	}
	m := BuildAdjacency(sections)
	mt := m.Transpose()

	if got, want := Springs(m), DeadEnds(mt); !slices.Equal(got, want) {
		t.Errorf("Springs(m) = %v, DeadEnds(transpose) = %v", got, want)
	}
	if got, want := DeadEnds(m), Springs(mt); !slices.Equal(got, want) {
		t.Errorf("DeadEnds(m) = %v, Springs(transpose) = %v", got, want)
	}
}

func TestIsolatedNodeExcludedFromIndex(t *testing.T) {
	// A declared node with no incident section never enters the matrix,
	// so it cannot be reported by the pruning.
	m := BuildAdjacency([]network.Section{sec("s1", "A", "B")})

	if got, want := m.IDs(), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
	c := Classify(m)
	for _, id := range c.Isolates {
		if id == "Lonely" {
			t.Error("edge-less node leaked into classification")
		}
	}
}
