package topology

import "github.com/transitlab/netlint/pkg/network"

// Centrality counts, for every declared node, the sections touching it as
// upstream plus the sections touching it as downstream. A self-loop
// contributes two. Nodes with no incident section map to zero, so the
// result covers the full node collection - unlike the adjacency index
// set, which drops edge-less nodes.
//
// Sections whose endpoints reference no declared node contribute nothing
// here; the validate package reports such references.
func Centrality(nodes map[string]network.Node, sections []network.Section) map[string]int {
	degrees := make(map[string]int, len(nodes))
	for id := range nodes {
		degrees[id] = 0
	}

	for _, s := range sections {
		if _, ok := degrees[s.Upstream]; ok {
			degrees[s.Upstream]++
		}
		if _, ok := degrees[s.Downstream]; ok {
			degrees[s.Downstream]++
		}
	}
	return degrees
}

// MaxCentrality returns the node with the highest degree. Ties resolve to
// the lexicographically smallest id so repeated runs report the same
// node. ok is false for an empty map; an all-zero map is a valid maximum.
func MaxCentrality(degrees map[string]int) (id string, degree int, ok bool) {
	for n, d := range degrees {
		if !ok || d > degree || (d == degree && n < id) {
			id, degree, ok = n, d, true
		}
	}
	return id, degree, ok
}
