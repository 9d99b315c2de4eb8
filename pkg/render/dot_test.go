package render

import (
	"strings"
	"testing"

	"github.com/transitlab/netlint/pkg/network"
	"github.com/transitlab/netlint/pkg/topology"
)

func testNet() *network.Network {
	return &network.Network{Roads: network.Roads{
		Nodes: map[string]network.Node{
			"A": {ID: "A", Position: network.Position{0, 0}},
			"B": {ID: "B", Position: network.Position{100, 0}},
			"C": {ID: "C", Position: network.Position{100, 100}},
			"D": {ID: "D", Position: network.Position{200, 100}},
		},
		Sections: network.SectionList{
			{ID: "s1", Upstream: "A", Downstream: "B", Length: 100},
			{ID: "s2", Upstream: "B", Downstream: "C", Length: 100},
			{ID: "s3", Upstream: "C", Downstream: "A", Length: 141},
			{ID: "s4", Upstream: "C", Downstream: "D", Length: 100},
			{ID: "s5", Upstream: "C", Downstream: "D", Length: 100},
		},
	}}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testNet(), nil, Options{})

	if !strings.HasPrefix(dot, "digraph network {") {
		t.Errorf("missing digraph header: %q", dot[:40])
	}
	for _, want := range []string{`"A";`, `"A" -> "B";`, `"C" -> "D";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
	if strings.Contains(dot, "fillcolor=orange") {
		t.Error("highlight colors present without topology result")
	}
}

func TestToDOTHighlights(t *testing.T) {
	net := testNet()
	topo := topology.Analyze(net)
	dot := ToDOT(net, topo, Options{})

	// D is a dead-end; C has the highest centrality; s4/s5 are duplicates.
	if !strings.Contains(dot, `"D" [fillcolor=orange]`) {
		t.Errorf("dead-end not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"C" [fillcolor=gold]`) {
		t.Errorf("max centrality node not highlighted:\n%s", dot)
	}
	if strings.Count(dot, "color=red, penwidth=2") != 2 {
		t.Errorf("duplicate sections not highlighted:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testNet(), nil, Options{Detailed: true, UsePositions: true})

	if !strings.Contains(dot, `label="s1 (100)"`) {
		t.Errorf("detailed edge label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `pos="200,100!"`) {
		t.Errorf("pinned position missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="144pt" height="80pt" viewBox="0.00 0.00 144.00 80.00" xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 144.00 80.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="144" height="80"`) {
		t.Errorf("pixel dimensions missing: %s", out)
	}

	// Without a viewBox, the input passes through untouched.
	plain := []byte(`<svg><g></g></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("input without viewBox was modified")
	}
}
