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
	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^240 - 1.
	testNetPowLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)
	testNetPowLimitBits uint32 = 0x1f00ffff

	// testNetPosLimit is the highest proof of stake value a block can
	// have for the test network.  It is the value 2^232 - 1.
	testNetPosLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 232), bigOne)
	testNetPosLimitBits uint32 = 0x1e00ffff
)

// TestNetParams defines the network parameters for the test Ion network.
// Not to be confused with the regression test network, this network is
// sometimes simply called "testnet".
var TestNetParams = Params{
	Name: "testnet",
	Net:  types.TestNet,

	GenesisTime: 1491737471, // 2017-04-09 11:31:11 +0000 UTC
	GenesisBits: testNetPowLimitBits,

	Consensus: ConsensusParams{
		MidasStartHeight:         30,
		DGWDifficultyStartHeight: 300,
		POSStartHeight:           500,
		POSPOWStartHeight:        1000,

		PowLimit:           testNetPowLimit,
		PowLimitBits:       testNetPowLimitBits,
		PosLimit:           testNetPosLimit,
		PosLimitBits:       testNetPosLimitBits,
		HybridPowLimit:     testNetPowLimit,
		HybridPowLimitBits: testNetPowLimitBits,

		PowTargetSpacing:       150,     // 2.5 minutes
		PosTargetSpacing:       64,      // 64 seconds
		PosTargetSpacingMidas:  64,      // 64 seconds
		PosTargetTimespanMidas: 40 * 64, // 40 blocks
		HybridPowTargetSpacing: 150,     // 2.5 minutes
		HybridPosTargetSpacing: 120,     // 2 minutes

		PowNoRetargeting:            false,
		PowAllowMinDifficultyBlocks: true,
		MinimumDifficultyBlocks:     0,
	},
}
