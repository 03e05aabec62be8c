package simgraph

import (
	"strconv"
	"strings"
)

// NormalizeAlias reduces an alias to its canonical integer-string form:
// surrounding whitespace is stripped and the value reparsed, so "07 "
// becomes "7". Non-numeric aliases normalize to "" (unset).
func NormalizeAlias(alias string) string {
	n, err := strconv.Atoi(strings.TrimSpace(alias))
	if err != nil {
		return ""
	}
	return strconv.Itoa(n)
}

// NodeTable is the unique-node table of a graph: one entry per pubkey,
// in first-seen order, holding the node's normalized alias.
type NodeTable struct {
	order []string
	alias map[string]string
}

// UniqueNodes builds the unique-node table. A node may appear in many
// channel records; the first occurrence per pubkey wins.
func (g *Graph) UniqueNodes() *NodeTable {
	t := &NodeTable{alias: make(map[string]string)}
	for _, ch := range g.Channels {
		for _, n := range []Node{ch.Node1, ch.Node2} {
			if _, seen := t.alias[n.Pubkey]; seen {
				continue
			}
			t.order = append(t.order, n.Pubkey)
			t.alias[n.Pubkey] = NormalizeAlias(n.Alias)
		}
	}
	return t
}

// Len returns the number of unique nodes.
func (t *NodeTable) Len() int {
	return len(t.order)
}

// Pubkeys returns the node pubkeys in first-seen order.
func (t *NodeTable) Pubkeys() []string {
	return t.order
}

// Contains reports whether the table has a node with the given pubkey.
func (t *NodeTable) Contains(pubkey string) bool {
	_, ok := t.alias[pubkey]
	return ok
}

// AliasOf returns the normalized alias of the node, "" when unset or
// the pubkey is unknown.
func (t *NodeTable) AliasOf(pubkey string) string {
	return t.alias[pubkey]
}

// PubkeyByAlias scans for the node whose normalized alias matches the
// given normalized alias. Unset aliases never match.
func (t *NodeTable) PubkeyByAlias(alias string) (string, bool) {
	if alias == "" {
		return "", false
	}
	for _, pk := range t.order {
		if t.alias[pk] == alias {
			return pk, true
		}
	}
	return "", false
}

// NextAlias returns the next unused integer alias: the maximum of all
// existing purely-numeric aliases plus one, or "1" when there are none.
// Negative aliases are not counted as purely numeric.
func (t *NodeTable) NextAlias() string {
	highest, found := 0, false
	for _, pk := range t.order {
		a := t.alias[pk]
		if a == "" || strings.HasPrefix(a, "-") {
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest, found = n, true
		}
	}
	if !found {
		return "1"
	}
	return strconv.Itoa(highest + 1)
}

// CapacityTable holds each node's aggregate channel capacity, in the
// order nodes were first seen.
type CapacityTable struct {
	order []string
	msat  map[string]int64
}

// AggregateCapacity sums, per node, the capacity of every channel the
// node participates in as either endpoint.
func (g *Graph) AggregateCapacity() *CapacityTable {
	t := &CapacityTable{msat: make(map[string]int64)}
	for _, ch := range g.Channels {
		for _, pk := range []string{ch.Node1.Pubkey, ch.Node2.Pubkey} {
			if _, seen := t.msat[pk]; !seen {
				t.order = append(t.order, pk)
			}
			t.msat[pk] += ch.CapacityMsat
		}
	}
	return t
}

// Pubkeys returns the node pubkeys in first-seen order.
func (t *CapacityTable) Pubkeys() []string {
	return t.order
}

// Msat returns the node's aggregate capacity in millisatoshi.
func (t *CapacityTable) Msat(pubkey string) int64 {
	return t.msat[pubkey]
}

// Neighborhood returns the set of nodes directly connected to pubkey:
// both endpoints of every channel touching it, the node itself
// included whenever it has at least one channel.
func (g *Graph) Neighborhood(pubkey string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, ch := range g.Channels {
		if ch.Node1.Pubkey == pubkey || ch.Node2.Pubkey == pubkey {
			set[ch.Node1.Pubkey] = struct{}{}
			set[ch.Node2.Pubkey] = struct{}{}
		}
	}
	return set
}
