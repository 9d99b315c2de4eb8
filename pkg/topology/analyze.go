package topology

import (
	"sync"

	"github.com/transitlab/netlint/pkg/network"
)

// Result bundles every topology pass over one network snapshot.
type Result struct {
	Classification `bson:",inline"`

	// FinalSections are the sections ending in a dead-end, input order.
	FinalSections []string `json:"final_sections" bson:"final_sections"`

	// Duplicates lists parallel-section groups in first-seen order.
	Duplicates []DuplicateGroup `json:"duplicates" bson:"duplicates"`

	// Centrality maps every declared node id to its incidence degree.
	Centrality map[string]int `json:"centrality" bson:"centrality"`

	// MaxCentralityNode is the highest-degree node, smallest id on ties.
	// Empty when the network declares no nodes.
	MaxCentralityNode   string `json:"max_centrality_node,omitempty" bson:"max_centrality_node,omitempty"`
	MaxCentralityDegree int    `json:"max_centrality_degree" bson:"max_centrality_degree"`
}

// Analyze runs the full topology analysis. The pruning passes, duplicate
// detection, and centrality are mutually independent and run concurrently;
// each pass is sequential internally.
func Analyze(net *network.Network) *Result {
	sections := net.Roads.Sections
	res := &Result{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		res.Classification = ClassifySections(sections)
		res.FinalSections = FinalSections(sections, res.DeadEnds)
	}()

	go func() {
		defer wg.Done()
		res.Duplicates = DuplicateGroups(sections)
	}()

	go func() {
		defer wg.Done()
		res.Centrality = Centrality(net.Roads.Nodes, sections)
		if id, deg, ok := MaxCentrality(res.Centrality); ok {
			res.MaxCentralityNode = id
			res.MaxCentralityDegree = deg
		}
	}()

	wg.Wait()
	return res
}
