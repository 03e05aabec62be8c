// Package attack injects a synthetic attacker node into a sim-ln
// topology: candidate channels to the highest-capacity nodes not
// already adjacent to the target, plus one direct channel to the
// target itself.
package attack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lnresearch/simtools/pkg/logging"
	"github.com/lnresearch/simtools/pkg/simgraph"
)

// File names inside a network directory.
const (
	PeacetimeFile   = "peacetime_network.json"
	AttacktimeFile  = "attacktime_network.json"
	TargetFile      = "target.txt"
	AttackerCSVFile = "attacker.csv"
)

// Result describes a completed injection.
type Result struct {
	AttackerAlias  string
	AttackerPubkey string
	TargetPubkey   string
	ChannelCount   int // candidate channels, excluding the target channel
	OutputPath     string
}

// Run executes the injection pipeline against the network directory:
// load peacetime topology, resolve the target alias, assign the
// attacker the next free integer alias, synthesize channels, and write
// the attacktime topology plus the attacker alias file.
func Run(dir string, cfg Config, log logging.Logger) (*Result, error) {
	peacetimePath := filepath.Join(dir, PeacetimeFile)
	targetPath := filepath.Join(dir, TargetFile)

	for _, path := range []string{peacetimePath, targetPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, &MissingFileError{Path: path}
		}
	}

	rawAlias, err := os.ReadFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", targetPath, err)
	}
	targetAlias := simgraph.NormalizeAlias(string(rawAlias))
	if targetAlias == "" {
		return nil, &TargetNotFoundError{Alias: strings.TrimSpace(string(rawAlias))}
	}

	graph, err := simgraph.Load(peacetimePath)
	if err != nil {
		return nil, err
	}
	log.Info("peacetime network loaded",
		logging.Path(peacetimePath),
		logging.Count(len(graph.Channels)),
	)

	nodes := graph.UniqueNodes()
	targetPubkey, ok := nodes.PubkeyByAlias(targetAlias)
	if !ok {
		return nil, &TargetNotFoundError{Alias: targetAlias}
	}

	if nodes.Contains(cfg.AttackerPubkey) {
		return nil, fmt.Errorf("%w: %s", ErrPubkeyExists, cfg.AttackerPubkey)
	}

	attackerAlias := nodes.NextAlias()
	log.Info("attacker assigned",
		logging.Alias(attackerAlias),
		logging.Pubkey(cfg.AttackerPubkey),
	)

	candidates := selectCandidates(graph, targetPubkey)
	channelCount := int(float64(nodes.Len()) * cfg.ChannelFraction)
	if len(candidates) < channelCount {
		return nil, fmt.Errorf("%w: need %d, have %d",
			ErrNotEnoughCandidates, channelCount, len(candidates))
	}
	if cfg.TargetScid >= cfg.BaseScid && cfg.TargetScid < cfg.BaseScid+uint64(channelCount) {
		return nil, fmt.Errorf("%w: base %d, count %d, target %d",
			ErrScidOverlap, cfg.BaseScid, channelCount, cfg.TargetScid)
	}

	// The alias file is written before channel synthesis so a follow-on
	// simulation can pick it up even while the topology write is pending.
	attackerCSVPath := filepath.Join(dir, AttackerCSVFile)
	if err := os.WriteFile(attackerCSVPath, []byte(attackerAlias), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", attackerCSVPath, err)
	}

	newChannels := make([]simgraph.Channel, 0, channelCount+1)
	for i := 0; i < channelCount; i++ {
		peer := candidates[i]
		newChannels = append(newChannels, simgraph.Channel{
			Scid:         cfg.BaseScid + uint64(i),
			CapacityMsat: cfg.CapacityMsat,
			Node1:        attackerEndpoint(cfg, attackerAlias),
			Node2:        peerEndpoint(cfg, peer, nodes.AliasOf(peer)),
		})
	}
	newChannels = append(newChannels, simgraph.Channel{
		Scid:         cfg.TargetScid,
		CapacityMsat: cfg.CapacityMsat * int64(channelCount),
		Node1:        attackerEndpoint(cfg, attackerAlias),
		Node2:        peerEndpoint(cfg, targetPubkey, targetAlias),
	})

	graph.Channels = append(newChannels, graph.Channels...)

	outputPath := filepath.Join(dir, AttacktimeFile)
	if err := graph.Save(outputPath); err != nil {
		return nil, err
	}
	log.Info("attacktime network written",
		logging.Path(outputPath),
		logging.Count(len(graph.Channels)),
	)

	return &Result{
		AttackerAlias:  attackerAlias,
		AttackerPubkey: cfg.AttackerPubkey,
		TargetPubkey:   targetPubkey,
		ChannelCount:   channelCount,
		OutputPath:     outputPath,
	}, nil
}

// selectCandidates returns every node outside the target's direct
// neighborhood (the target included), ordered by descending aggregate
// channel capacity. Ties keep first-seen order.
func selectCandidates(g *simgraph.Graph, targetPubkey string) []string {
	caps := g.AggregateCapacity()
	connected := g.Neighborhood(targetPubkey)

	var candidates []string
	for _, pk := range caps.Pubkeys() {
		if _, ok := connected[pk]; !ok {
			candidates = append(candidates, pk)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return caps.Msat(candidates[i]) > caps.Msat(candidates[j])
	})
	return candidates
}
