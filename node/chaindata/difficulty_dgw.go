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

// dgwPastBlocks is the size of the DarkGravityWave averaging window.
const dgwPastBlocks = 24

// pastTargetAvg folds one more decoded target into the running weighted
// average used by the DarkGravityWave variants:
//
//	avg' = (avg*count + target) / (count+1)
//
// This intentionally is not a strict arithmetic mean; the recurrence with
// its floor divisions must be reproduced exactly for historical replay.
func pastTargetAvg(prevAvg *big.Int, count int64, target *big.Int) *big.Int {
	avg := new(big.Int).Mul(prevAvg, big.NewInt(count))
	avg.Add(avg, target)
	return avg.Div(avg, big.NewInt(count+1))
}

// GetNextWorkRequiredPivx calculates the required difficulty under the
// PIVX-derived rule, active between the DarkGravityWave activation height
// and the hybrid era.  Above POSStartHeight the difficulty changes every
// block with a ppcoin-style exponential retarget; the same retarget with the
// stake ceiling applies during the last three blocks before the switch on
// the test network.  Everywhere else a 24-block DarkGravityWave weighted
// average is retargeted proportionally to the observed timespan.
func GetNextWorkRequiredPivx(lastNode blocknode.IBlockNode, params *chaincfg.Params, proofOfStake bool) uint32 {
	if params.Consensus.PowNoRetargeting {
		return lastNode.Bits()
	}

	// Make sure we have enough blocks past the activation, otherwise just
	// return the proof-of-work ceiling.
	if lastNode == nil || lastNode.Height() == 0 ||
		lastNode.Height() < params.Consensus.DGWDifficultyStartHeight+dgwPastBlocks {
		return pow.BigToCompact(params.Consensus.PowLimit)
	}

	targetLimit := params.Consensus.PowLimit
	if proofOfStake {
		targetLimit = params.Consensus.PosLimit
	}

	const (
		targetSpacing  = int64(60)
		targetTimespan = int64(60 * 40)
		interval       = targetTimespan / targetSpacing
	)

	if lastNode.Height() > params.Consensus.POSStartHeight {
		// Target change every block, exponential moving toward target
		// spacing.
		actualSpacing := lastNode.Timestamp() - lastNode.Parent().Timestamp()
		if actualSpacing < 0 {
			actualSpacing = 1
		}

		return retargetExponential(lastNode.Bits(), actualSpacing, targetSpacing, interval, targetLimit)
	} else if params.IsTestNet() && lastNode.Height()+3 > params.Consensus.POSStartHeight {
		// Exception for the current testnet; remove when starting a
		// new testnet.
		actualSpacing := lastNode.Timestamp() - lastNode.Parent().Timestamp()
		if actualSpacing < 0 {
			actualSpacing = 1
		}

		return retargetExponential(lastNode.Bits(), actualSpacing, targetSpacing, interval, params.Consensus.PosLimit)
	}

	// DarkGravityWave v3: walk the last 24 blocks building the weighted
	// target average and the actual timespan between their timestamps.
	var (
		countBlocks    int64
		actualTimespan int64
		lastBlockTime  int64
		avg            *big.Int
	)

	blockReading := lastNode
	for i := int64(1); blockReading != nil && blockReading.Height() > 0; i++ {
		if i > dgwPastBlocks {
			break
		}
		countBlocks++

		target := pow.CompactToBig(blockReading.Bits())
		if countBlocks == 1 {
			avg = target
		} else {
			avg = pastTargetAvg(avg, countBlocks, target)
		}

		if lastBlockTime > 0 {
			actualTimespan += lastBlockTime - blockReading.Timestamp()
		}
		lastBlockTime = blockReading.Timestamp()

		if blockReading.Parent() == nil {
			break
		}
		blockReading = blockReading.Parent()
	}

	return retargetProportional(avg, actualTimespan, countBlocks*params.Consensus.PosTargetSpacing, 3, targetLimit)
}
