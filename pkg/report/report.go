// Package report assembles the full analysis output for one network
// document: entity counts, length statistics, structural validation
// findings, and graph topology results. Reports are what the CLI prints,
// the cache stores, and the HTTP API serves.
package report

import (
	"bytes"
	"time"

	"github.com/google/uuid"

	"github.com/transitlab/netlint/pkg/cache"
	"github.com/transitlab/netlint/pkg/errors"
	"github.com/transitlab/netlint/pkg/network"
	"github.com/transitlab/netlint/pkg/topology"
	"github.com/transitlab/netlint/pkg/validate"
)

// Counts holds the entity totals of a network document.
type Counts struct {
	Nodes    int `json:"nodes" bson:"nodes"`
	Sections int `json:"sections" bson:"sections"`
	Stops    int `json:"stops" bson:"stops"`
	Zones    int `json:"zones" bson:"zones"`
	Layers   int `json:"layers" bson:"layers"`
}

// Report is the complete analysis of one network document.
type Report struct {
	ID          string    `json:"id" bson:"_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	NetworkHash string    `json:"network_hash" bson:"network_hash"`

	Counts Counts `json:"counts" bson:"counts"`

	// Lengths is nil when the network has no sections.
	Lengths *network.LengthStats `json:"lengths,omitempty" bson:"lengths,omitempty"`

	// ConnectivityIndex is the section-to-node ratio; nil without nodes.
	ConnectivityIndex *float64 `json:"connectivity_index,omitempty" bson:"connectivity_index,omitempty"`

	Validation *validate.Result `json:"validation" bson:"validation"`
	Topology   *topology.Result `json:"topology" bson:"topology"`

	// Matching holds per-layer map-matching statistics for public
	// transport layers, keyed by layer id.
	Matching map[string]network.MatchingReport `json:"matching,omitempty" bson:"matching,omitempty"`
}

// Valid reports whether structural validation passed.
func (r *Report) Valid() bool {
	return r.Validation == nil || r.Validation.Valid()
}

// Build parses and fully analyzes a raw network document. The returned
// report carries a fresh id; the network hash ties it back to the exact
// input bytes.
func Build(data []byte) (*Report, error) {
	net, err := network.ReadNetwork(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNetwork, err, "parse network document")
	}
	return BuildFromNetwork(net, cache.Hash(data)), nil
}

// BuildFromNetwork analyzes an already parsed network. hash identifies
// the source document; pass an empty string when unknown.
func BuildFromNetwork(net *network.Network, hash string) *Report {
	rep := &Report{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		NetworkHash: hash,
		Counts: Counts{
			Nodes:    net.NodeCount(),
			Sections: net.SectionCount(),
			Stops:    net.StopCount(),
			Zones:    net.ZoneCount(),
			Layers:   len(net.Layers),
		},
		Validation: validate.Network(net),
		Topology:   topology.Analyze(net),
	}

	if ls, ok := net.Roads.LengthStats(); ok {
		rep.Lengths = &ls
	}
	if ci, ok := net.Roads.ConnectivityIndex(); ok {
		rep.ConnectivityIndex = &ci
	}

	for _, layer := range net.PublicTransportLayers() {
		if rep.Matching == nil {
			rep.Matching = make(map[string]network.MatchingReport)
		}
		rep.Matching[layer.ID] = layer.Matching(layer.VehType + "_")
	}

	return rep
}
