package network

import (
	"maps"
	"slices"
)

// Section returns the section with the given id, scanning in document order.
func (r *Roads) Section(id string) (Section, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// NodeIDs returns all declared node ids in sorted order.
func (r *Roads) NodeIDs() []string {
	return slices.Sorted(maps.Keys(r.Nodes))
}

// StopIDs returns all stop ids in sorted order.
func (r *Roads) StopIDs() []string {
	return slices.Sorted(maps.Keys(r.Stops))
}

// ZoneIDs returns all zone ids in sorted order.
func (r *Roads) ZoneIDs() []string {
	return slices.Sorted(maps.Keys(r.Zones))
}

// SectionIDs returns section ids in document order.
func (r *Roads) SectionIDs() []string {
	ids := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		ids[i] = s.ID
	}
	return ids
}

// NodeCount returns the number of declared nodes.
func (n *Network) NodeCount() int { return len(n.Roads.Nodes) }

// SectionCount returns the number of sections.
func (n *Network) SectionCount() int { return len(n.Roads.Sections) }

// StopCount returns the number of stops.
func (n *Network) StopCount() int { return len(n.Roads.Stops) }

// ZoneCount returns the number of zones.
func (n *Network) ZoneCount() int { return len(n.Roads.Zones) }

// Layer returns the layer with the given ID.
func (n *Network) Layer(id string) (Layer, bool) {
	for _, l := range n.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// PublicTransportLayers returns the layers describing scheduled transit,
// in document order.
func (n *Network) PublicTransportLayers() []Layer {
	var out []Layer
	for _, l := range n.Layers {
		if l.IsPublicTransport() {
			out = append(out, l)
		}
	}
	return out
}
