// Package simgraph models the sim-ln network topology files the
// simulation tools read and rewrite. A topology document is a JSON
// object whose "sim_network" key holds the channel list; any other
// top-level keys are carried through a load/save cycle untouched.
package simgraph

import (
	"encoding/json"
	"os"

	"github.com/lnresearch/simtools/pkg/fsio"
)

// networkKey is the top-level key holding the channel list.
const networkKey = "sim_network"

// Node is one endpoint of a channel, with its routing policy.
type Node struct {
	Pubkey          string `json:"pubkey"`
	Alias           string `json:"alias"`
	MaxHTLCCount    int64  `json:"max_htlc_count"`
	MaxInFlightMsat int64  `json:"max_in_flight_msat"`
	MinHTLCSizeMsat int64  `json:"min_htlc_size_msat"`
	MaxHTLCSizeMsat int64  `json:"max_htlc_size_msat"`
	CltvExpiryDelta int64  `json:"cltv_expiry_delta"`
	BaseFee         int64  `json:"base_fee"`
	FeeRateProp     int64  `json:"fee_rate_prop"`
}

// Channel is a payment channel between two nodes.
type Channel struct {
	Scid         uint64 `json:"scid"`
	CapacityMsat int64  `json:"capacity_msat"`
	Node1        Node   `json:"node_1"`
	Node2        Node   `json:"node_2"`
}

// Graph is a loaded topology document. Channels holds the decoded
// sim_network entries; extra keeps every other top-level key raw so a
// rewrite preserves them.
type Graph struct {
	Channels []Channel
	extra    map[string]json.RawMessage
}

// Load reads and decodes a topology file. Inputs ending in ".snappy"
// are decompressed transparently. An absent or empty sim_network key
// yields ErrEmptyNetwork.
func Load(path string) (*Graph, error) {
	data, err := fsio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &GraphError{Op: "load", Path: path, Cause: err}
	}

	g := &Graph{extra: doc}
	if raw, ok := doc[networkKey]; ok {
		if err := json.Unmarshal(raw, &g.Channels); err != nil {
			return nil, &GraphError{Op: "load", Path: path, Cause: err}
		}
		delete(doc, networkKey)
	}
	if len(g.Channels) == 0 {
		return nil, &GraphError{Op: "load", Path: path, Cause: ErrEmptyNetwork}
	}
	return g, nil
}

// Save writes the topology to path, pretty-printed with two-space
// indentation, re-attaching the preserved top-level keys.
func (g *Graph) Save(path string) error {
	doc := make(map[string]json.RawMessage, len(g.extra)+1)
	for k, v := range g.extra {
		doc[k] = v
	}
	channels, err := json.Marshal(g.Channels)
	if err != nil {
		return &GraphError{Op: "save", Path: path, Cause: err}
	}
	doc[networkKey] = channels

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &GraphError{Op: "save", Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &GraphError{Op: "save", Path: path, Cause: err}
	}
	return nil
}
