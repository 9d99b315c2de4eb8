package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PublicTransportLayerType is the TYPE tag marking a layer as a public
// transport layer (bus, tram, metro) in MnMS network documents.
const PublicTransportLayerType = "mnms.graph.layers.PublicTransportLayer"

// =============================================================================
// Position
// =============================================================================

// Position is a planar projected coordinate pair (x, y). The unit is
// whatever the source document uses; the model does not interpret it.
type Position [2]float64

// X returns the first coordinate.
func (p Position) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Position) Y() float64 { return p[1] }

// UnmarshalJSON accepts coordinates encoded as JSON numbers or as numeric
// strings. Network files produced by different exporters mix both forms.
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("position: want 2 coordinates, got %d", len(raw))
	}
	for i, v := range raw {
		switch c := v.(type) {
		case float64:
			p[i] = c
		case string:
			f, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return fmt.Errorf("position: coordinate %d: %w", i, err)
			}
			p[i] = f
		default:
			return fmt.Errorf("position: coordinate %d: unsupported type %T", i, v)
		}
	}
	return nil
}

// =============================================================================
// Road Entities
// =============================================================================

// Node is a road graph vertex.
type Node struct {
	ID       string   `json:"id" bson:"id"`
	Position Position `json:"position" bson:"position"`
}

// Section is a directed road edge from Upstream to Downstream with a
// non-negative length. Self-loops (Upstream == Downstream) are permitted.
type Section struct {
	ID         string  `json:"id" bson:"id"`
	Upstream   string  `json:"upstream" bson:"upstream"`
	Downstream string  `json:"downstream" bson:"downstream"`
	Length     float64 `json:"length" bson:"length"`
}

// IsSelfLoop reports whether the section starts and ends at the same node.
func (s Section) IsSelfLoop() bool { return s.Upstream == s.Downstream }

// Stop is a transit stop anchored on a section.
type Stop struct {
	ID               string   `json:"id" bson:"id"`
	Section          string   `json:"section,omitempty" bson:"section,omitempty"`
	RelativePosition float64  `json:"relative_position,omitempty" bson:"relative_position,omitempty"`
	AbsolutePosition Position `json:"absolute_position" bson:"absolute_position"`
}

// Zone is a named polygonal area grouping sections.
type Zone struct {
	ID       string     `json:"id" bson:"id"`
	Sections []string   `json:"sections,omitempty" bson:"sections,omitempty"`
	Contour  []Position `json:"contour" bson:"contour"`
}

// =============================================================================
// SectionList - Order-Preserving Section Collection
// =============================================================================

// SectionList holds sections in document order. JSON network files encode
// SECTIONS as an object; standard map decoding would lose the key order,
// which duplicate-section reports depend on for reproducibility.
type SectionList []Section

// UnmarshalJSON decodes a JSON object of sections, preserving key order.
// Each entry's id is taken from the section value, not the object key.
func (l *SectionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sections: expected JSON object, got %v", tok)
	}

	var out SectionList
	for dec.More() {
		if _, err := dec.Token(); err != nil { // object key, id repeats inside
			return err
		}
		var s Section
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("section %d: %w", len(out), err)
		}
		out = append(out, s)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}

	*l = out
	return nil
}

// MarshalJSON encodes the list back to a JSON object keyed by section id,
// in list order. Round-trips with UnmarshalJSON.
func (l SectionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// =============================================================================
// Layers
// =============================================================================

// Line is a public transport line: the stops it serves and, per consecutive
// stop pair, the list of road sections connecting them.
type Line struct {
	ID       string     `json:"ID" bson:"id"`
	Stops    []string   `json:"STOPS" bson:"stops"`
	Sections [][]string `json:"SECTIONS" bson:"sections"`
}

// Layer is a modal layer (bus, tram, ...) on top of the road graph.
type Layer struct {
	ID      string `json:"ID" bson:"id"`
	Type    string `json:"TYPE" bson:"type"`
	VehType string `json:"VEH_TYPE" bson:"veh_type"`
	Lines   []Line `json:"LINES" bson:"lines"`
}

// IsPublicTransport reports whether the layer describes scheduled transit.
func (l Layer) IsPublicTransport() bool { return l.Type == PublicTransportLayerType }

// =============================================================================
// Network
// =============================================================================

// Roads is the road-side description: graph entities plus stops and zones.
type Roads struct {
	Nodes    map[string]Node `json:"NODES" bson:"nodes"`
	Stops    map[string]Stop `json:"STOPS" bson:"stops"`
	Sections SectionList     `json:"SECTIONS" bson:"sections"`
	Zones    map[string]Zone `json:"ZONES" bson:"zones"`
}

// Network is a parsed network document. It is a read-only snapshot: no
// method mutates it after construction.
type Network struct {
	Roads  Roads   `json:"ROADS" bson:"roads"`
	Layers []Layer `json:"LAYERS,omitempty" bson:"layers,omitempty"`
}
