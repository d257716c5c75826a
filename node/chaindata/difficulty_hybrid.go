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

// hybridPosInterval is the smoothing interval, in blocks, of the hybrid
// stake retarget.
const hybridPosInterval = 40

// HybridPoWDarkGravityWave calculates the required difficulty for the next
// proof-of-work block of the hybrid era.  Only work blocks participate: a
// stake tip is first skipped back to the nearest work block, and the
// 24-block DarkGravityWave window is built over work blocks exclusively,
// never crossing below POSPOWStartHeight.  With insufficient history the
// hybrid proof-of-work ceiling is returned.
func HybridPoWDarkGravityWave(lastNodeIn blocknode.IBlockNode, params *chaincfg.Params) uint32 {
	powLimit := params.Consensus.HybridPowLimit
	minHeight := params.Consensus.POSPOWStartHeight

	lastNode := lastNodeIn
	if lastNodeIn.IsProofOfStake() {
		lastNode = GetHybridPrevIndex(lastNodeIn, false, minHeight)
	}

	// Make sure we have at least dgwPastBlocks+1 work blocks, otherwise
	// just return the hybrid proof-of-work ceiling.
	if lastNode == nil || lastNode.Height() < minHeight+dgwPastBlocks {
		return pow.BigToCompact(powLimit)
	}

	if params.Consensus.PowAllowMinDifficultyBlocks {
		prev := GetHybridPrevIndex(lastNode, false, minHeight)
		if prev == nil {
			return pow.BigToCompact(powLimit)
		}
		prevBlockTime := prev.Timestamp()

		// Recent work block is more than 2 hours old.
		if lastNode.Timestamp() > prevBlockTime+2*60*60 {
			return pow.BigToCompact(powLimit)
		}
		// Recent work block is more than 4 spacings old.
		if lastNode.Timestamp() > prevBlockTime+params.Consensus.PowTargetSpacing*4 {
			bnNew := new(big.Int).Mul(pow.CompactToBig(lastNode.Bits()), big.NewInt(10))
			if bnNew.Cmp(powLimit) > 0 {
				bnNew.Set(powLimit)
			}
			return pow.BigToCompact(bnNew)
		}
	}

	var avg *big.Int

	node := lastNode
	for countBlocks := int64(1); countBlocks <= dgwPastBlocks; countBlocks++ {
		target := pow.CompactToBig(node.Bits())
		if countBlocks == 1 {
			avg = target
		} else {
			avg = pastTargetAvg(avg, countBlocks, target)
		}

		if countBlocks != dgwPastBlocks {
			node = GetHybridPrevIndex(node, false, minHeight)
			if node == nil || node.Height() <= minHeight {
				// Less than dgwPastBlocks+1 work blocks,
				// return minimum difficulty.
				return pow.BigToCompact(powLimit)
			}
		}
	}

	actualTimespan := lastNode.Timestamp() - node.Timestamp()
	targetTimespan := dgwPastBlocks * params.Consensus.HybridPowTargetSpacing

	return retargetProportional(avg, actualTimespan, targetTimespan, 4, powLimit)
}

// HybridPoSPIVXDifficulty calculates the required difficulty for the next
// proof-of-stake block of the hybrid era.  Only stake blocks participate: a
// work tip is first skipped back to the nearest stake block with a floor of
// POSPOWStartHeight, and the spacing toward the next prior stake block
// drives a ppcoin-style exponential retarget with interval 40.
//
// The original rule leaves the case of a stake tip at or below
// POSStartHeight undefined; since the hybrid era activates far above it,
// the case is unreachable on every defined network and resolves to the
// stake ceiling here.
func HybridPoSPIVXDifficulty(lastNodeIn blocknode.IBlockNode, params *chaincfg.Params) uint32 {
	posLimit := params.Consensus.PosLimit
	minHeight := params.Consensus.POSPOWStartHeight

	lastNode := lastNodeIn
	if !lastNodeIn.IsProofOfStake() {
		lastNode = GetHybridPrevIndex(lastNodeIn, true, minHeight)
	}

	// POSPOWStartHeight marks the first hybrid stake block.  Start with a
	// minimum difficulty block.
	if lastNode == nil || lastNode.Height() <= minHeight {
		return pow.BigToCompact(posLimit)
	}

	if params.Consensus.PowNoRetargeting {
		return lastNode.Bits()
	}

	if lastNode.Height() <= params.Consensus.POSStartHeight {
		// Undefined in the original rule; see the function comment.
		return pow.BigToCompact(posLimit)
	}

	var actualSpacing int64
	if prev := GetHybridPrevIndex(lastNode, true, minHeight); prev != nil {
		actualSpacing = lastNode.Timestamp() - prev.Timestamp()
	}
	if actualSpacing < 0 {
		actualSpacing = 1
	}

	// Target change every block, exponential moving toward target
	// spacing.
	return retargetExponential(lastNode.Bits(), actualSpacing,
		params.Consensus.HybridPosTargetSpacing, hybridPosInterval, posLimit)
}
