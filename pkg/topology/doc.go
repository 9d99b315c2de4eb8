// Package topology analyzes the connectivity of a directed road network.
//
// # Overview
//
// The package classifies road nodes by whether any sustainable directed
// path leads out of them or into them:
//
//   - Dead-ends: nodes from which every forward walk eventually runs out
//     of outgoing sections. Traffic entering such a node can never rejoin
//     the circulating network.
//   - Springs: the symmetric notion for incoming sections - nodes that no
//     sustained path from the rest of the network can reach.
//   - Isolates: nodes that are both.
//
// The classification is the fixed point of an iterative pruning: a node
// with no outgoing edges is a dead-end, edges into confirmed dead-ends do
// not count as outgoing capacity for their origin, repeat until stable.
// Exactly the nodes on no forward-reachable directed cycle survive as
// dead-ends, and likewise for springs in reverse.
//
// [BuildAdjacency] constructs the boolean adjacency relation the analysis
// runs on. Its index set is the union of section endpoints: a declared
// node with no incident section is invisible to the classification and
// must be reported separately if needed.
//
// Independent of the pruning, [DuplicateGroups] surfaces parallel sections
// sharing an endpoint pair and [Centrality] counts incident sections per
// node. [Analyze] bundles all passes over one network snapshot.
//
// The package performs no I/O and never mutates its input; all routines
// take the data they operate on as arguments and are safe for concurrent
// use on the same network.
package topology
