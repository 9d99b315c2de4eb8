package network

import (
	"slices"
	"testing"
)

func TestLengthStats(t *testing.T) {
	r := &Roads{Sections: SectionList{
		{ID: "s1", Upstream: "A", Downstream: "B", Length: 10},
		{ID: "s2", Upstream: "B", Downstream: "C", Length: 30},
		{ID: "s3", Upstream: "C", Downstream: "D", Length: 10},
		{ID: "s4", Upstream: "D", Downstream: "A", Length: 30},
	}}

	ls, ok := r.LengthStats()
	if !ok {
		t.Fatal("LengthStats: ok = false")
	}
	if ls.Min != 10 || ls.Max != 30 || ls.Mean != 20 || ls.Median != 20 {
		t.Errorf("stats = %+v, want min 10 max 30 mean 20 median 20", ls)
	}
	if got, want := ls.MinSections, []string{"s1", "s3"}; !slices.Equal(got, want) {
		t.Errorf("MinSections = %v, want %v", got, want)
	}
	if got, want := ls.MaxSections, []string{"s2", "s4"}; !slices.Equal(got, want) {
		t.Errorf("MaxSections = %v, want %v", got, want)
	}
}

func TestLengthStatsEmpty(t *testing.T) {
	var r Roads
	if _, ok := r.LengthStats(); ok {
		t.Fatal("LengthStats on empty roads: ok = true")
	}
}

func TestConnectivityIndex(t *testing.T) {
	r := &Roads{
		Nodes: map[string]Node{"A": {ID: "A"}, "B": {ID: "B"}},
		Sections: SectionList{
			{ID: "s1", Upstream: "A", Downstream: "B"},
			{ID: "s2", Upstream: "B", Downstream: "A"},
			{ID: "s3", Upstream: "A", Downstream: "A"},
		},
	}
	got, ok := r.ConnectivityIndex()
	if !ok || got != 1.5 {
		t.Errorf("ConnectivityIndex = %v, %v, want 1.5, true", got, ok)
	}

	var empty Roads
	if _, ok := empty.ConnectivityIndex(); ok {
		t.Error("ConnectivityIndex without nodes: ok = true")
	}
}

func TestSectionsPerZone(t *testing.T) {
	r := &Roads{
		Sections: SectionList{
			{ID: "s1"}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"},
		},
		Zones: map[string]Zone{"Z1": {ID: "Z1"}, "Z2": {ID: "Z2"}},
	}
	got, ok := r.SectionsPerZone()
	if !ok || got != 2 {
		t.Errorf("SectionsPerZone = %v, %v, want 2, true", got, ok)
	}

	var empty Roads
	if _, ok := empty.SectionsPerZone(); ok {
		t.Error("SectionsPerZone without zones: ok = true")
	}
}
