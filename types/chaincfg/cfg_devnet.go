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
	// devNetPowLimit is the highest proof of work value a block can have
	// for a developer network.  It is the value 2^248 - 1.
	devNetPowLimit            = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 248), bigOne)
	devNetPowLimitBits uint32 = 0x2000ffff
)

// DevNetParams defines the network parameters for an ephemeral developer Ion
// network.  Devnets keep every era but force the proof-of-work ceiling for
// the first MinimumDifficultyBlocks blocks so a fresh network can bootstrap
// on a handful of machines.
var DevNetParams = Params{
	Name: "devnet",
	Net:  types.DevNet,

	GenesisTime: 1598918400, // 2020-09-01 00:00:00 +0000 UTC
	GenesisBits: devNetPowLimitBits,

	Consensus: ConsensusParams{
		MidasStartHeight:         10,
		DGWDifficultyStartHeight: 20,
		POSStartHeight:           100,
		POSPOWStartHeight:        200,

		PowLimit:           devNetPowLimit,
		PowLimitBits:       devNetPowLimitBits,
		PosLimit:           devNetPowLimit,
		PosLimitBits:       devNetPowLimitBits,
		HybridPowLimit:     devNetPowLimit,
		HybridPowLimitBits: devNetPowLimitBits,

		PowTargetSpacing:       150,     // 2.5 minutes
		PosTargetSpacing:       64,      // 64 seconds
		PosTargetSpacingMidas:  64,      // 64 seconds
		PosTargetTimespanMidas: 40 * 64, // 40 blocks
		HybridPowTargetSpacing: 150,     // 2.5 minutes
		HybridPosTargetSpacing: 120,     // 2 minutes

		PowNoRetargeting:            false,
		PowAllowMinDifficultyBlocks: true,
		MinimumDifficultyBlocks:     4032,
	},
}
