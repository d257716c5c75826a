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

// avgRecentTimestamps computes the average block intervals over the last 5,
// 7, 9 and 17 blocks ending at lastNode.  Missing ancestors near genesis are
// treated as if they were spaced at the nominal stake spacing.
func avgRecentTimestamps(lastNode blocknode.IBlockNode, params *chaincfg.Params) (avgOf5, avgOf7, avgOf9, avgOf17 int64) {
	var blocktime int64
	if lastNode != nil {
		blocktime = lastNode.Timestamp()
	}

	for blockoffset := 0; blockoffset < 17; blockoffset++ {
		oldblocktime := blocktime
		if lastNode != nil && lastNode.Parent() != nil {
			lastNode = lastNode.Parent()
			blocktime = lastNode.Timestamp()
		} else {
			// genesis block or previous
			blocktime -= params.Consensus.PosTargetSpacing
		}

		// For each block, add the interval.
		if blockoffset < 5 {
			avgOf5 += oldblocktime - blocktime
		}
		if blockoffset < 7 {
			avgOf7 += oldblocktime - blocktime
		}
		if blockoffset < 9 {
			avgOf9 += oldblocktime - blocktime
		}
		avgOf17 += oldblocktime - blocktime
	}

	// Now we have the sums of the block intervals.  Division gets us the
	// averages.
	return avgOf5 / 5, avgOf7 / 7, avgOf9 / 9, avgOf17 / 17
}

// GetNextWorkRequiredMidas calculates the required difficulty under the
// Midas rule, active between the Midas and DarkGravityWave activation
// heights.
//
// The rule regulates block times so as to remain synchronized in the long
// run with actual wall-clock time.  It first derives a desired interval from
// how far ahead of or behind the linear schedule (genesis time + height *
// nominal spacing) the chain is: interpolated between 0.9x and 1.1x of the
// nominal spacing when within one timespan of schedule, saturated at those
// bounds otherwise.  Emergency corrections kick in when the short rolling
// averages unanimously run faster than 2/3 or slower than 3/2 of the desired
// interval; otherwise a damped correction one-sixth of the way toward the
// desired interval is applied when at least three of the four rolling
// averages, always including the two longest, sit on the same side of it.
func GetNextWorkRequiredMidas(lastNode blocknode.IBlockNode, params *chaincfg.Params, proofOfStake bool) uint32 {
	spacing := params.Consensus.PosTargetSpacingMidas
	timespan := params.Consensus.PosTargetTimespanMidas

	// Seconds per block desired when far behind schedule.
	fastInterval := spacing * 9 / 10
	// Seconds per block desired when far ahead of schedule.
	slowInterval := spacing * 11 / 10

	targetLimit := params.Consensus.PowLimit
	if proofOfStake {
		targetLimit = params.Consensus.PosLimit
	}

	// Genesis block.
	if lastNode == nil {
		return pow.BigToCompact(targetLimit)
	}

	now := lastNode.Timestamp()
	blockHeightTime := params.GenesisTime + int64(lastNode.Height())*spacing

	var intervalDesired int64
	switch {
	case now < blockHeightTime+timespan && now > blockHeightTime:
		// Ahead of schedule by less than one timespan.
		intervalDesired = ((timespan-(now-blockHeightTime))*spacing +
			(now-blockHeightTime)*fastInterval) / spacing

	case now+timespan > blockHeightTime && now < blockHeightTime:
		// Behind schedule by less than one timespan.
		intervalDesired = ((timespan-(blockHeightTime-now))*spacing +
			(blockHeightTime-now)*slowInterval) / timespan

	case now < blockHeightTime:
		// Ahead by more than one timespan.
		intervalDesired = slowInterval

	default:
		// Behind by more than one timespan.
		intervalDesired = fastInterval
	}

	avgOf5, avgOf7, avgOf9, avgOf17 := avgRecentTimestamps(lastNode, params)

	// Emergency adjustments bring the difficulty up or down fast when a
	// burst miner or multipool jumps on or off.  8/5 and 5/8 are closer
	// to 1 than 3/2 and 2/3, which keeps the adjustment self-damping; do
	// not change the constants in a way that breaks that relationship.
	toofast := intervalDesired * 2 / 3
	tooslow := intervalDesired * 3 / 2

	difficultyFactor := int64(10000)
	switch {
	case avgOf5 < toofast && avgOf9 < toofast && avgOf17 < toofast:
		// Emergency adjustment, slow down.
		difficultyFactor *= 8
		difficultyFactor /= 5

	case avgOf5 > tooslow && avgOf7 > tooslow && avgOf9 > tooslow:
		// Emergency adjustment, speed up.
		difficultyFactor *= 5
		difficultyFactor /= 8

	case ((avgOf5 > intervalDesired || avgOf7 > intervalDesired) && avgOf9 > intervalDesired && avgOf17 > intervalDesired) ||
		((avgOf5 < intervalDesired || avgOf7 < intervalDesired) && avgOf9 < intervalDesired && avgOf17 < intervalDesired):
		// At least three averages too high or at least three too low,
		// always including the two longest.  Happens 3/16 of the time
		// on random variation alone and regulates one-sixth of the
		// way to the calculated point.
		//
		// Timestamps are not required to be monotonic, so a heavily
		// backdated window can drive the denominator to zero or below.
		// Skip the correction in that case instead of dividing; the
		// clamp below bounds the factor either way.
		if denom := avgOf17 + 5*intervalDesired; denom > 0 {
			difficultyFactor *= 6 * intervalDesired
			difficultyFactor /= denom
		}
	}

	// Limit to doubling or halving.
	if difficultyFactor > 20000 {
		difficultyFactor = 20000
	}
	if difficultyFactor < 5000 {
		difficultyFactor = 5000
	}

	bnOld := pow.CompactToBig(lastNode.Bits())

	// No adjustment.
	if difficultyFactor == 10000 {
		return pow.BigToCompact(bnOld)
	}

	bnNew := bnOld.Div(bnOld, big.NewInt(difficultyFactor))
	bnNew.Mul(bnNew, big.NewInt(10000))

	if bnNew.Cmp(targetLimit) > 0 {
		bnNew.Set(targetLimit)
	}

	log.Debug().
		Int64("factor", difficultyFactor).
		Int64("intervalDesired", intervalDesired).
		Msgf("midas retarget at height %d", lastNode.Height()+1)

	return pow.BigToCompact(bnNew)
}
