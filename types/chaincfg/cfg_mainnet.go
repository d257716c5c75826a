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
	// mainNetPowLimit is the highest proof of work value a block can have
	// for the main network.  It is the value 2^240 - 1.
	mainNetPowLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)
	mainNetPowLimitBits uint32 = 0x1f00ffff // target=0000ffff00000000000000000000000000000000000000000000000000000000 << 8

	// mainNetPosLimit is the highest proof of stake value a block can
	// have for the main network.  It is the value 2^232 - 1.
	mainNetPosLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 232), bigOne)
	mainNetPosLimitBits uint32 = 0x1e00ffff // target=0000ffff00000000000000000000000000000000000000000000000000000000

	// mainNetHybridPowLimit is the highest proof of work value of the
	// hybrid era.  It is the value 2^240 - 1.
	mainNetHybridPowLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)
	mainNetHybridPowLimitBits uint32 = 0x1f00ffff // target=0000ffff00000000000000000000000000000000000000000000000000000000 << 8
)

// MainNetParams defines the network parameters for the main Ion network.
var MainNetParams = Params{
	Name: "mainnet",
	Net:  types.MainNet,

	GenesisTime: 1486045800, // 2017-02-02 14:30:00 +0000 UTC
	GenesisBits: mainNetPowLimitBits,

	Consensus: ConsensusParams{
		MidasStartHeight:         50,
		DGWDifficultyStartHeight: 550,
		POSStartHeight:           1001,
		POSPOWStartHeight:        1550000,

		PowLimit:           mainNetPowLimit,
		PowLimitBits:       mainNetPowLimitBits,
		PosLimit:           mainNetPosLimit,
		PosLimitBits:       mainNetPosLimitBits,
		HybridPowLimit:     mainNetHybridPowLimit,
		HybridPowLimitBits: mainNetHybridPowLimitBits,

		PowTargetSpacing:       150,     // 2.5 minutes
		PosTargetSpacing:       64,      // 64 seconds
		PosTargetSpacingMidas:  64,      // 64 seconds
		PosTargetTimespanMidas: 40 * 64, // 40 blocks
		HybridPowTargetSpacing: 150,     // 2.5 minutes
		HybridPosTargetSpacing: 120,     // 2 minutes

		PowNoRetargeting:            false,
		PowAllowMinDifficultyBlocks: false,
		MinimumDifficultyBlocks:     0,

		PosHeightExceptions: mainNetPosHeightExceptions,
	},
}
