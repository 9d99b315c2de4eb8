// Package render turns networks and their analysis results into Graphviz
// diagrams.
//
// # Overview
//
// [ToDOT] emits DOT source for a network, with optional highlighting of
// topology findings (dead-ends, springs, isolates, duplicate sections, the
// highest-centrality node). [RenderSVG] rasterizes DOT source to SVG using
// the embedded Graphviz engine, so no external binaries are required.
//
//	dot := render.ToDOT(net, topo, render.Options{})
//	svg, err := render.RenderSVG(dot)
package render
