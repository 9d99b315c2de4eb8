package topology

import (
	"maps"
	"testing"

	"github.com/transitlab/netlint/pkg/network"
)

func nodeSet(ids ...string) map[string]network.Node {
	m := make(map[string]network.Node, len(ids))
	for _, id := range ids {
		m[id] = network.Node{ID: id}
	}
	return m
}

func TestCentrality(t *testing.T) {
	tests := []struct {
		name     string
		nodes    map[string]network.Node
		sections []network.Section
		want     map[string]int
	}{
		{
			name:  "Triangle",
			nodes: nodeSet("A", "B", "C"),
			sections: []network.Section{
				sec("s1", "A", "B"),
				sec("s2", "B", "C"),
				sec("s3", "C", "B"),
			},
			want: map[string]int{"A": 1, "B": 3, "C": 2},
		},
		{
			name:  "SelfLoopCountsTwice",
			nodes: nodeSet("A", "B"),
			sections: []network.Section{
				sec("s1", "A", "A"),
				sec("s2", "A", "B"),
			},
			want: map[string]int{"A": 3, "B": 1},
		},
		{
			name:     "EdgelessNodesMapToZero",
			nodes:    nodeSet("A", "B", "C"),
			sections: []network.Section{sec("s1", "A", "B")},
			want:     map[string]int{"A": 1, "B": 1, "C": 0},
		},
		{
			name:  "UndeclaredEndpointIgnored",
			nodes: nodeSet("A"),
			sections: []network.Section{
				sec("s1", "A", "Ghost"),
			},
			want: map[string]int{"A": 1},
		},
		{
			name:     "NoSections",
			nodes:    nodeSet("A", "B"),
			sections: nil,
			want:     map[string]int{"A": 0, "B": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Centrality(tt.nodes, tt.sections)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Centrality = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxCentrality(t *testing.T) {
	tests := []struct {
		name       string
		degrees    map[string]int
		wantID     string
		wantDegree int
		wantOK     bool
	}{
		{
			name:       "Simple",
			degrees:    map[string]int{"A": 1, "B": 3, "C": 2},
			wantID:     "B",
			wantDegree: 3,
			wantOK:     true,
		},
		{
			name:       "TieResolvesToSmallestID",
			degrees:    map[string]int{"B": 2, "A": 2, "C": 1},
			wantID:     "A",
			wantDegree: 2,
			wantOK:     true,
		},
		{
			name:       "AllZero",
			degrees:    map[string]int{"X": 0, "Y": 0},
			wantID:     "X",
			wantDegree: 0,
			wantOK:     true,
		},
		{
			name:    "Empty",
			degrees: map[string]int{},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, degree, ok := MaxCentrality(tt.degrees)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if id != tt.wantID || degree != tt.wantDegree {
				t.Errorf("max = %s:%d, want %s:%d", id, degree, tt.wantID, tt.wantDegree)
			}
		})
	}
}
