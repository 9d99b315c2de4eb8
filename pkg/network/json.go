package network

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadNetwork decodes a JSON network document from r.
//
// Missing top-level tags are not an error here: a document without ROADS
// decodes to an empty road description. Use the validate package to check
// structural completeness before analysis.
//
// The returned Network is independent of r and safe to use after
// ReadNetwork returns. ReadNetwork does not close r.
func ReadNetwork(r io.Reader) (*Network, error) {
	var n Network
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &n, nil
}

// ImportFile reads a JSON network file at path and returns the decoded
// Network. Errors wrap the underlying cause with the file path.
func ImportFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadNetwork(f)
}

// WriteNetwork encodes n as indented JSON to w. Section order is preserved;
// map-keyed collections (nodes, stops, zones) follow Go's sorted-key JSON
// encoding, so output is deterministic for a given network.
func WriteNetwork(n *Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes n to a JSON file at path.
func ExportFile(n *Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteNetwork(n, f)
}
