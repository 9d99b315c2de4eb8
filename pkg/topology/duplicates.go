package topology

import "github.com/transitlab/netlint/pkg/network"

// DuplicateGroup lists the sections sharing one ordered endpoint pair.
// SectionIDs keeps input order, so the first entry is the original and
// the rest are its duplicates.
type DuplicateGroup struct {
	Upstream   string   `json:"upstream" bson:"upstream"`
	Downstream string   `json:"downstream" bson:"downstream"`
	SectionIDs []string `json:"section_ids" bson:"section_ids"`
}

// DuplicateGroups groups sections by their ordered (upstream, downstream)
// pair and returns every group with more than one member. Groups appear in
// first-occurrence order of the pair, and members in input order, so the
// report is reproducible for a given section collection.
func DuplicateGroups(sections []network.Section) []DuplicateGroup {
	byPair := make(map[[2]string]int)
	var groups []DuplicateGroup

	for _, s := range sections {
		pair := [2]string{s.Upstream, s.Downstream}
		if i, ok := byPair[pair]; ok {
			groups[i].SectionIDs = append(groups[i].SectionIDs, s.ID)
			continue
		}
		byPair[pair] = len(groups)
		groups = append(groups, DuplicateGroup{
			Upstream:   s.Upstream,
			Downstream: s.Downstream,
			SectionIDs: []string{s.ID},
		})
	}

	var out []DuplicateGroup
	for _, g := range groups {
		if len(g.SectionIDs) > 1 {
			out = append(out, g)
		}
	}
	return out
}

// FinalSections returns the ids of sections whose downstream node is a
// dead-end, in input order. These are the sections traffic cannot leave
// once entered.
func FinalSections(sections []network.Section, deadEnds []string) []string {
	dead := make(map[string]bool, len(deadEnds))
	for _, id := range deadEnds {
		dead[id] = true
	}

	var out []string
	for _, s := range sections {
		if dead[s.Downstream] {
			out = append(out, s.ID)
		}
	}
	return out
}
