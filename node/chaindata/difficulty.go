// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"math/big"

	"gitlab.com/ion-network/iond/types/blocknode"
	"gitlab.com/ion-network/iond/types/chaincfg"
	"gitlab.com/ion-network/iond/types/pow"
)

// origTargetSpacing is the nominal seconds per block of the original
// retargeting rule.  The value is part of the consensus rules and is not
// configurable.
const origTargetSpacing = 64

// origInterval is the smoothing interval, in blocks, of the original
// exponential retarget.
const origInterval = 10

// origMainNetStakeLimit is the stake target ceiling the original rule uses
// on the main network, 2^236 - 1.  Historical constant, do not touch.
var origMainNetStakeLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1))

// IsProofOfStakeHeight classifies the block at the given height as
// proof-of-stake or proof-of-work.  Heights at or above POSStartHeight are
// always proof-of-stake.  Below it, the per-network exception table is
// consulted: the main network retroactively reclassified a set of launch
// window blocks, and every node must agree on that set to replay history.
func IsProofOfStakeHeight(height int32, params *chaincfg.Params) bool {
	if height >= params.Consensus.POSStartHeight {
		return true
	}

	for _, r := range params.Consensus.PosHeightExceptions {
		if r.Contains(height) {
			return true
		}
	}

	return false
}

// GetHybridPrevIndex walks backward from node and returns the nearest
// ancestor whose kind matches wantStake, or nil once the walk would cross
// below minHeight.  Chains can be arbitrarily deep, so this is an explicit
// loop rather than recursion.
func GetHybridPrevIndex(node blocknode.IBlockNode, wantStake bool, minHeight int32) blocknode.IBlockNode {
	for node != nil {
		prev := node.Parent()
		if prev == nil || prev.Height() < minHeight {
			return nil
		}
		if prev.IsProofOfStake() == wantStake {
			return prev
		}
		node = prev
	}

	return nil
}

// retargetExponential applies the ppcoin-style exponential moving average
// toward targetSpacing over interval blocks:
//
//	new = old * ((interval-1)*targetSpacing + 2*actualSpacing) / ((interval+1)*targetSpacing)
//
// The result is clamped to (0, limit]; a non-positive or too-easy result
// resolves to the limit.  Division floors, matching the reference integer
// semantics.
func retargetExponential(bits uint32, actualSpacing, targetSpacing, interval int64, limit *big.Int) uint32 {
	bnNew := pow.CompactToBig(bits)
	bnNew.Mul(bnNew, big.NewInt((interval-1)*targetSpacing+actualSpacing+actualSpacing))
	bnNew.Div(bnNew, big.NewInt((interval+1)*targetSpacing))

	if bnNew.Sign() <= 0 || bnNew.Cmp(limit) > 0 {
		return pow.BigToCompact(limit)
	}

	return pow.BigToCompact(bnNew)
}

// retargetProportional scales an averaged target by actualTimespan over
// targetTimespan, clamping the timespan to [target/clamp, target*clamp]
// before the division.  The result never exceeds the limit.
func retargetProportional(avg *big.Int, actualTimespan, targetTimespan, clamp int64, limit *big.Int) uint32 {
	if actualTimespan < targetTimespan/clamp {
		actualTimespan = targetTimespan / clamp
	}
	if actualTimespan > targetTimespan*clamp {
		actualTimespan = targetTimespan * clamp
	}

	bnNew := new(big.Int).Mul(avg, big.NewInt(actualTimespan))
	bnNew.Div(bnNew, big.NewInt(targetTimespan))

	if bnNew.Cmp(limit) > 0 {
		bnNew.Set(limit)
	}

	newBits := pow.BigToCompact(bnNew)
	log.Debug().Msgf("Difficulty retarget: actual timespan %d, target timespan %d, new target %08x (%064x)",
		actualTimespan, targetTimespan, newBits, bnNew)

	return newBits
}

// GetNextWorkRequiredOrig calculates the required difficulty under the
// original retargeting rule, active from genesis until the Midas activation
// height.  It retargets the most recent block of the requested kind toward a
// nominal 64 second spacing using an exponential moving average over 10
// blocks.  With fewer than two blocks of the requested kind the configured
// ceiling is returned.
func GetNextWorkRequiredOrig(lastNode blocknode.IBlockNode, params *chaincfg.Params, proofOfStake bool) uint32 {
	if params.Consensus.PowNoRetargeting {
		return lastNode.Bits()
	}

	targetLimit := params.Consensus.PowLimit
	if proofOfStake && params.IsMainNet() {
		targetLimit = origMainNetStakeLimit
	}

	// Genesis block.
	if lastNode == nil {
		return pow.BigToCompact(targetLimit)
	}

	prev := lastNode
	for prev.Parent() != nil && IsProofOfStakeHeight(prev.Height(), params) != proofOfStake {
		prev = prev.Parent()
	}
	if prev.Parent() == nil {
		return pow.BigToCompact(targetLimit) // first block
	}

	prevPrev := prev.Parent()
	for prevPrev.Parent() != nil && IsProofOfStakeHeight(prevPrev.Height(), params) != proofOfStake {
		prevPrev = prevPrev.Parent()
	}
	if prevPrev.Parent() == nil {
		return pow.BigToCompact(targetLimit) // second block
	}

	actualSpacing := prev.Timestamp() - prevPrev.Timestamp()
	if actualSpacing < 0 {
		actualSpacing = origTargetSpacing
	} else if proofOfStake && actualSpacing > origTargetSpacing*10 {
		actualSpacing = origTargetSpacing * 10
	}

	// Target change every block, exponential moving toward target
	// spacing.  The nearer block's difficulty is the retarget base.
	return retargetExponential(prev.Bits(), actualSpacing, origTargetSpacing, origInterval, targetLimit)
}

// GetNextWorkRequired calculates the required difficulty for the block after
// the passed tip.  The era is selected by the next block's height, most
// recent activation first; that priority order is itself a consensus rule.
// The hybridPow flag selects the proof-of-work side of the hybrid era and is
// ignored below POSPOWStartHeight.
//
// The function never fails: insufficient history always resolves to the
// applicable ceiling.  It is safe for concurrent access since block nodes
// and params are immutable.
func GetNextWorkRequired(lastNode blocknode.IBlockNode, params *chaincfg.Params, hybridPow bool) uint32 {
	nextHeight := lastNode.Height() + 1
	proofOfStake := IsProofOfStakeHeight(nextHeight, params)

	// This is only active on devnets.
	if lastNode.Height() < params.Consensus.MinimumDifficultyBlocks {
		return pow.BigToCompact(params.Consensus.PowLimit)
	}

	// Most recent algo first.
	switch {
	case nextHeight >= params.Consensus.POSPOWStartHeight:
		if hybridPow {
			return HybridPoWDarkGravityWave(lastNode, params)
		}
		return HybridPoSPIVXDifficulty(lastNode, params)

	case lastNode.Height() >= params.Consensus.DGWDifficultyStartHeight:
		return GetNextWorkRequiredPivx(lastNode, params, proofOfStake)

	case lastNode.Height() >= params.Consensus.MidasStartHeight:
		return GetNextWorkRequiredMidas(lastNode, params, proofOfStake)

	default:
		return GetNextWorkRequiredOrig(lastNode, params, proofOfStake)
	}
}
