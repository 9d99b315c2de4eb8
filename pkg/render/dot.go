// Package render turns analyzed road networks into Graphviz DOT and SVG
// diagrams. Topology findings (dead-ends, springs, isolates, duplicate
// sections) are highlighted so problems are visible at a glance.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/transitlab/netlint/pkg/network"
	"github.com/transitlab/netlint/pkg/topology"
)

// Options configures network diagram rendering.
type Options struct {
	// Detailed adds section ids and lengths as edge labels.
	// When false, edges are drawn bare.
	Detailed bool

	// UsePositions pins nodes to their document coordinates, for layout
	// engines that honor pos (neato, fdp).
	UsePositions bool
}

// Node and edge colors for topology findings.
const (
	colorDeadEnd   = "orange"
	colorSpring    = "lightskyblue"
	colorIsolate   = "red"
	colorMaxDegree = "gold"
	colorDuplicate = "red"
)

// ToDOT converts a road network to Graphviz DOT format. topo may be nil;
// when given, classified nodes and duplicate sections are colored:
// dead-ends orange, springs blue, isolates red, the maximum-centrality
// node gold, duplicate sections as red edges.
func ToDOT(net *network.Network, topo *topology.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	nodeColors, dupEdges := highlights(topo)

	for _, id := range net.Roads.NodeIDs() {
		attrs := nodeAttrs(net.Roads.Nodes[id], nodeColors[id], opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", id)
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, s := range net.Roads.Sections {
		attrs := edgeAttrs(s, dupEdges[s.ID], opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", s.Upstream, s.Downstream)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", s.Upstream, s.Downstream, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// highlights maps node ids to fill colors and duplicate section ids to
// true, based on the topology result.
func highlights(topo *topology.Result) (map[string]string, map[string]bool) {
	nodeColors := make(map[string]string)
	dupEdges := make(map[string]bool)
	if topo == nil {
		return nodeColors, dupEdges
	}

	// Isolates win over the one-sided classes, max centrality over all.
	for _, id := range topo.DeadEnds {
		nodeColors[id] = colorDeadEnd
	}
	for _, id := range topo.Springs {
		nodeColors[id] = colorSpring
	}
	for _, id := range topo.Isolates {
		nodeColors[id] = colorIsolate
	}
	if topo.MaxCentralityNode != "" {
		nodeColors[topo.MaxCentralityNode] = colorMaxDegree
	}

	for _, grp := range topo.Duplicates {
		for _, id := range grp.SectionIDs {
			dupEdges[id] = true
		}
	}
	return nodeColors, dupEdges
}

func nodeAttrs(n network.Node, color string, opts Options) []string {
	var attrs []string
	if color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%s", color))
	}
	if opts.UsePositions {
		attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", n.Position.X(), n.Position.Y()))
	}
	return attrs
}

func edgeAttrs(s network.Section, duplicate bool, opts Options) []string {
	var attrs []string
	if opts.Detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%s (%g)", s.ID, s.Length)))
	}
	if duplicate {
		attrs = append(attrs, fmt.Sprintf("color=%s", colorDuplicate), "penwidth=2")
	}
	return attrs
}
