package attack

import "github.com/lnresearch/simtools/pkg/simgraph"

// Synthesized-endpoint policies. The attacker advertises free routing
// with a short CLTV delta so simulated payments prefer it; peers get a
// conventional default policy. HTLC size limits derive from the
// candidate channel capacity regardless of the channel they appear on.

const (
	policyMaxHTLCCount    = 100
	policyMinHTLCSizeMsat = 1000
	policyHTLCSizeMargin  = 5000

	attackerCltvExpiryDelta = 40
	peerCltvExpiryDelta     = 144
	peerBaseFee             = 1000
	peerFeeRateProp         = 1000
)

func attackerEndpoint(cfg Config, alias string) simgraph.Node {
	return simgraph.Node{
		Pubkey:          cfg.AttackerPubkey,
		Alias:           alias,
		MaxHTLCCount:    policyMaxHTLCCount,
		MaxInFlightMsat: cfg.CapacityMsat,
		MinHTLCSizeMsat: policyMinHTLCSizeMsat,
		MaxHTLCSizeMsat: cfg.CapacityMsat - policyHTLCSizeMargin,
		CltvExpiryDelta: attackerCltvExpiryDelta,
		BaseFee:         0,
		FeeRateProp:     0,
	}
}

func peerEndpoint(cfg Config, pubkey, alias string) simgraph.Node {
	return simgraph.Node{
		Pubkey:          pubkey,
		Alias:           alias,
		MaxHTLCCount:    policyMaxHTLCCount,
		MaxInFlightMsat: cfg.CapacityMsat,
		MinHTLCSizeMsat: policyMinHTLCSizeMsat,
		MaxHTLCSizeMsat: cfg.CapacityMsat - policyHTLCSizeMargin,
		CltvExpiryDelta: peerCltvExpiryDelta,
		BaseFee:         peerBaseFee,
		FeeRateProp:     peerFeeRateProp,
	}
}
