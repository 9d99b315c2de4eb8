package topology

import (
	"slices"

	"github.com/transitlab/netlint/pkg/network"
)

// ClassifySections computes the same classification as [Classify] over
// [BuildAdjacency], without materializing the dense matrix. It peels
// sinks (and, independently, sources) off adjacency lists with live
// degree counters: when a node's live out-degree drops to zero it is
// confirmed as a dead-end and the live out-degrees of its predecessors
// shrink accordingly. This runs in O(N+E) and is the variant Analyze
// uses; the dense fixed point remains the reference semantics.
func ClassifySections(sections []network.Section) Classification {
	succ, pred := collapsedAdjacency(sections)

	c := Classification{
		DeadEnds: peel(succ, pred),
		Springs:  peel(pred, succ),
	}
	c.Isolates = intersectSorted(c.DeadEnds, c.Springs)
	return c
}

// collapsedAdjacency builds successor and predecessor sets with parallel
// sections collapsed, matching the boolean relation of BuildAdjacency.
func collapsedAdjacency(sections []network.Section) (succ, pred map[string]map[string]struct{}) {
	succ = make(map[string]map[string]struct{})
	pred = make(map[string]map[string]struct{})

	touch := func(m map[string]map[string]struct{}, id string) map[string]struct{} {
		set, ok := m[id]
		if !ok {
			set = make(map[string]struct{})
			m[id] = set
		}
		return set
	}

	for _, s := range sections {
		touch(succ, s.Upstream)[s.Downstream] = struct{}{}
		touch(pred, s.Downstream)[s.Upstream] = struct{}{}
		// Both maps index the full endpoint set.
		touch(succ, s.Downstream)
		touch(pred, s.Upstream)
	}
	return succ, pred
}

// peel strips nodes whose forward set is empty, propagating the removal
// to their backward neighbours, until no node's live forward degree
// reaches zero anymore. Called with (succ, pred) it confirms dead-ends,
// with (pred, succ) it confirms springs.
func peel(forward, backward map[string]map[string]struct{}) []string {
	degree := make(map[string]int, len(forward))
	var queue []string
	for id, set := range forward {
		degree[id] = len(set)
		if len(set) == 0 {
			queue = append(queue, id)
		}
	}

	confirmed := make(map[string]bool, len(queue))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if confirmed[u] {
			continue
		}
		confirmed[u] = true

		for p := range backward[u] {
			degree[p]--
			if degree[p] == 0 && !confirmed[p] {
				queue = append(queue, p)
			}
		}
	}

	out := make([]string, 0, len(confirmed))
	for id := range confirmed {
		out = append(out, id)
	}
	slices.Sort(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
