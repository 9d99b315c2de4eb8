// Package network defines the in-memory model of a multimodal transport
// network: road nodes, directed sections, transit stops, zones, and the
// layered public transport description on top of them.
//
// # Overview
//
// A [Network] is a read-only snapshot parsed once from a JSON network
// document. The model provides structural access and summary statistics
// only - topology analysis lives in the topology package, validation in
// the validate package.
//
// # JSON Format
//
// The document shape follows the MnMS network convention:
//
//	{
//	  "ROADS": {
//	    "NODES":    {"N1": {"id": "N1", "position": [0, 100]}},
//	    "STOPS":    {"S1": {"id": "S1", "absolute_position": [10, 90]}},
//	    "SECTIONS": {"L1": {"id": "L1", "upstream": "N1", "downstream": "N2", "length": 120.5}},
//	    "ZONES":    {"RES": {"id": "RES", "contour": [[0, 0], [0, 1], [1, 1]]}}
//	  },
//	  "LAYERS": [
//	    {"ID": "BUSLayer", "TYPE": "...", "VEH_TYPE": "BUS", "LINES": [...]}
//	  ]
//	}
//
// Coordinates may appear as JSON numbers or as numeric strings; both are
// accepted. Section order within the SECTIONS object is preserved on load
// so that reports derived from it are reproducible.
//
// # Import and Export
//
// Use [ImportFile] to read a network from a file path, or [ReadNetwork]
// to read from any io.Reader:
//
//	net, err := network.ImportFile("network.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ExportNodeLink] writes the road graph in the generic node-link format
// consumed by graph tools (one node per road node, one link per section).
package network
