// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"gitlab.com/ion-network/iond/types"
)

var (
	// regTestPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regTestPowLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	regTestPowLimitBits uint32 = 0x207fffff
)

// RegTestParams defines the network parameters for the regression test Ion
// network.  Retargeting is disabled entirely; every block inherits the tip's
// difficulty.
var RegTestParams = Params{
	Name: "regtest",
	Net:  types.RegTestNet,

	GenesisTime: 1296688602, // 2011-02-02 23:16:42 +0000 UTC
	GenesisBits: regTestPowLimitBits,

	Consensus: ConsensusParams{
		MidasStartHeight:         100,
		DGWDifficultyStartHeight: 200,
		POSStartHeight:           500,
		POSPOWStartHeight:        1000,

		PowLimit:           regTestPowLimit,
		PowLimitBits:       regTestPowLimitBits,
		PosLimit:           regTestPowLimit,
		PosLimitBits:       regTestPowLimitBits,
		HybridPowLimit:     regTestPowLimit,
		HybridPowLimitBits: regTestPowLimitBits,

		PowTargetSpacing:       150,     // 2.5 minutes
		PosTargetSpacing:       64,      // 64 seconds
		PosTargetSpacingMidas:  64,      // 64 seconds
		PosTargetTimespanMidas: 40 * 64, // 40 blocks
		HybridPowTargetSpacing: 150,     // 2.5 minutes
		HybridPosTargetSpacing: 120,     // 2 minutes

		PowNoRetargeting:            true,
		PowAllowMinDifficultyBlocks: true,
		MinimumDifficultyBlocks:     0,
	},
}
