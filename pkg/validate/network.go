package validate

import (
	"github.com/transitlab/netlint/pkg/network"
)

// Network checks a parsed network document for structural problems:
// missing collections, sections pointing at undeclared nodes, negative
// lengths, and stale stop, zone, and line references. Issues are reported
// in a deterministic order: collections first, then sections in document
// order, then stops, zones, and layers by sorted id.
func Network(n *network.Network) *Result {
	res := &Result{}

	checkCollections(res, n)
	checkSections(res, &n.Roads)
	checkStops(res, &n.Roads)
	checkZones(res, &n.Roads)
	checkLayers(res, n)

	return res
}

func checkCollections(res *Result, n *network.Network) {
	if len(n.Roads.Nodes) == 0 {
		res.errorf(CheckMissingCollection, "NODES", "network declares no nodes")
	}
	if len(n.Roads.Sections) == 0 {
		res.errorf(CheckMissingCollection, "SECTIONS", "network declares no sections")
	}
	if len(n.Roads.Stops) == 0 {
		res.warnf(CheckMissingCollection, "STOPS", "network declares no stops")
	}
	if len(n.Roads.Zones) == 0 {
		res.warnf(CheckMissingCollection, "ZONES", "network declares no zones")
	}
}

func checkSections(res *Result, r *network.Roads) {
	for _, s := range r.Sections {
		if _, ok := r.Nodes[s.Upstream]; !ok {
			res.errorf(CheckDanglingEndpoint, s.ID, "upstream node %q is not declared", s.Upstream)
		}
		if _, ok := r.Nodes[s.Downstream]; !ok {
			res.errorf(CheckDanglingEndpoint, s.ID, "downstream node %q is not declared", s.Downstream)
		}
		if s.Length < 0 {
			res.errorf(CheckSectionLength, s.ID, "negative length %g", s.Length)
		} else if s.Length == 0 {
			res.warnf(CheckSectionLength, s.ID, "zero length")
		}
		if s.IsSelfLoop() {
			res.warnf(CheckSelfLoop, s.ID, "section starts and ends at node %q", s.Upstream)
		}
	}
}

func checkStops(res *Result, r *network.Roads) {
	for _, id := range r.StopIDs() {
		stop := r.Stops[id]
		if stop.Section != "" {
			if _, ok := r.Section(stop.Section); !ok {
				res.errorf(CheckStopReference, id, "section %q is not declared", stop.Section)
			}
		}
		if stop.RelativePosition < 0 || stop.RelativePosition > 1 {
			res.warnf(CheckStopPosition, id, "relative position %g outside [0, 1]", stop.RelativePosition)
		}
	}
}

func checkZones(res *Result, r *network.Roads) {
	for _, id := range r.ZoneIDs() {
		zone := r.Zones[id]
		for _, sec := range zone.Sections {
			if _, ok := r.Section(sec); !ok {
				res.errorf(CheckZoneReference, id, "section %q is not declared", sec)
			}
		}
		if len(zone.Contour) > 0 && len(zone.Contour) < 3 {
			res.warnf(CheckZoneReference, id, "contour has %d points, not a polygon", len(zone.Contour))
		}
	}
}

func checkLayers(res *Result, n *network.Network) {
	for _, layer := range n.Layers {
		for _, line := range layer.Lines {
			for _, stop := range line.Stops {
				if _, ok := n.Roads.Stops[stop]; !ok {
					res.errorf(CheckLineReference, line.ID, "stop %q is not declared", stop)
				}
			}
			if len(line.Stops) > 1 && len(line.Sections) != len(line.Stops)-1 {
				res.warnf(CheckLineReference, line.ID,
					"%d stops but %d section lists, want %d",
					len(line.Stops), len(line.Sections), len(line.Stops)-1)
			}
		}
	}
}
