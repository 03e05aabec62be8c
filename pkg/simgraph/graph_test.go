package simgraph

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

// testChannel builds a channel with plain default policies.
func testChannel(scid uint64, capacity int64, pk1, alias1, pk2, alias2 string) Channel {
	node := func(pk, alias string) Node {
		return Node{
			Pubkey:          pk,
			Alias:           alias,
			MaxHTLCCount:    483,
			MaxInFlightMsat: capacity,
			MinHTLCSizeMsat: 1,
			MaxHTLCSizeMsat: capacity,
			CltvExpiryDelta: 40,
			BaseFee:         0,
			FeeRateProp:     0,
		}
	}
	return Channel{
		Scid:         scid,
		CapacityMsat: capacity,
		Node1:        node(pk1, alias1),
		Node2:        node(pk2, alias2),
	}
}

func writeGraphFile(t *testing.T, dir string, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "peacetime_network.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_RoundTripPreservesExtraKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeGraphFile(t, dir, map[string]any{
		"sim_network": []any{
			map[string]any{
				"scid":          1,
				"capacity_msat": 100000,
				"node_1":        map[string]any{"pubkey": "aa", "alias": "1"},
				"node_2":        map[string]any{"pubkey": "bb", "alias": "2"},
			},
		},
		"version": "0.2",
		"nodes":   []any{"aa", "bb"},
	})

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(g.Channels) != 1 {
		t.Fatalf("got %d channels, want 1", len(g.Channels))
	}
	if g.Channels[0].Node1.Pubkey != "aa" || g.Channels[0].CapacityMsat != 100000 {
		t.Errorf("decoded channel = %+v", g.Channels[0])
	}

	out := filepath.Join(dir, "attacktime_network.json")
	if err := g.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"sim_network", "version", "nodes"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("output lost top-level key %q", key)
		}
	}
}

func TestLoad_EmptyNetwork(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"empty array", map[string]any{"sim_network": []any{}}},
		{"missing key", map[string]any{"other": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGraphFile(t, t.TempDir(), tt.doc)
			_, err := Load(path)
			if !errors.Is(err, ErrEmptyNetwork) {
				t.Errorf("Load = %v, want ErrEmptyNetwork", err)
			}
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peacetime_network.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var ge *GraphError
	if !errors.As(err, &ge) || ge.Op != "load" {
		t.Errorf("error = %v, want *GraphError with Op load", err)
	}
}

func TestLoad_SnappyInput(t *testing.T) {
	plain, err := json.Marshal(map[string]any{
		"sim_network": []Channel{testChannel(1, 1000, "aa", "1", "bb", "2")},
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "peacetime_network.json.snappy")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write(plain); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(g.Channels) != 1 || g.Channels[0].Node2.Pubkey != "bb" {
		t.Errorf("decoded channels = %+v", g.Channels)
	}
}
