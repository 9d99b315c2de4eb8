package network

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// nodeLinkDoc mirrors the node-link JSON layout used by common graph
// tooling (networkx node_link_data and friends), so exported road graphs
// drop straight into external analysis pipelines.
type nodeLinkDoc struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Graph      map[string]any `json:"graph"`
	Nodes      []nodeLinkNode `json:"nodes"`
	Links      []nodeLinkEdge `json:"links"`
}

type nodeLinkNode struct {
	ID       string     `json:"id"`
	Position [2]float64 `json:"position"`
}

type nodeLinkEdge struct {
	ID     string  `json:"id"`
	Length float64 `json:"length"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Key    int     `json:"key"`
}

// WriteNodeLink writes the road graph of n as a directed multigraph in
// node-link JSON form. Nodes are sorted by id; links keep section document
// order, with parallel sections numbered by an incrementing key.
func WriteNodeLink(n *Network, w io.Writer) error {
	doc := nodeLinkDoc{
		Directed:   true,
		Multigraph: true,
		Graph:      map[string]any{},
		Nodes:      make([]nodeLinkNode, 0, len(n.Roads.Nodes)),
		Links:      make([]nodeLinkEdge, 0, len(n.Roads.Sections)),
	}

	for _, id := range slices.Sorted(maps.Keys(n.Roads.Nodes)) {
		nd := n.Roads.Nodes[id]
		doc.Nodes = append(doc.Nodes, nodeLinkNode{ID: nd.ID, Position: [2]float64(nd.Position)})
	}

	keys := make(map[[2]string]int)
	for _, s := range n.Roads.Sections {
		pair := [2]string{s.Upstream, s.Downstream}
		doc.Links = append(doc.Links, nodeLinkEdge{
			ID:     s.ID,
			Length: s.Length,
			Source: s.Upstream,
			Target: s.Downstream,
			Key:    keys[pair],
		})
		keys[pair]++
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportNodeLink writes the node-link form of n to a file at path.
func ExportNodeLink(n *Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteNodeLink(n, f)
}
