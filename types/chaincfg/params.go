// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"gitlab.com/ion-network/iond/types"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid
// the overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// HeightRange is a closed interval [Low, High] of block heights.
type HeightRange struct {
	Low  int32
	High int32
}

// Contains reports whether height falls inside the closed interval.
func (r HeightRange) Contains(height int32) bool {
	return height >= r.Low && height <= r.High
}

// ConsensusParams holds the difficulty-related consensus rules of one
// network.  Values are constructed once at startup and never mutated, so a
// single instance may be read from any number of goroutines.
type ConsensusParams struct {
	// Era activation heights.  Each height marks the first block governed
	// by the corresponding retargeting algorithm; the dispatcher always
	// tests the highest threshold first, so the eras never overlap in
	// effect.
	MidasStartHeight         int32
	DGWDifficultyStartHeight int32
	POSStartHeight           int32
	POSPOWStartHeight        int32

	// PowLimit is the highest proof of work value a block can have, i.e.
	// the easiest permitted target.  PowLimitBits is its compact form.
	PowLimit     *big.Int
	PowLimitBits uint32

	// PosLimit is the easiest permitted target for proof-of-stake blocks.
	PosLimit     *big.Int
	PosLimitBits uint32

	// HybridPowLimit is the easiest permitted target for proof-of-work
	// blocks of the hybrid era.
	HybridPowLimit     *big.Int
	HybridPowLimitBits uint32

	// Target spacings and timespans, in seconds.
	PowTargetSpacing       int64
	PosTargetSpacing       int64
	PosTargetSpacingMidas  int64
	PosTargetTimespanMidas int64
	HybridPowTargetSpacing int64
	HybridPosTargetSpacing int64

	// PowNoRetargeting short-circuits every retarget to the tip's bits.
	// Only regression test networks set it.
	PowNoRetargeting bool

	// PowAllowMinDifficultyBlocks relaxes the hybrid proof-of-work rule
	// to the ceiling once the tip is stale.  Only test networks set it.
	PowAllowMinDifficultyBlocks bool

	// MinimumDifficultyBlocks forces the proof-of-work ceiling for every
	// block below this height regardless of era.  Only devnets set a
	// non-zero value.
	MinimumDifficultyBlocks int32

	// PosHeightExceptions lists heights below POSStartHeight that were
	// retroactively reclassified as proof-of-stake.  This encodes an
	// irreversible historical consensus fact of the main network and must
	// never be edited; all other networks leave it nil.
	PosHeightExceptions []HeightRange
}

// Params defines an Ion network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net types.IonNet

	// GenesisTime is the timestamp of the genesis block.  The Midas
	// algorithm anchors its block schedule at this value.
	GenesisTime int64

	// GenesisBits is the difficulty of the genesis block in compact form.
	GenesisBits uint32

	// Consensus carries the difficulty consensus rules.
	Consensus ConsensusParams
}

// IsMainNet reports whether the params describe the main network.  The main
// network is the only one carrying the historical proof-of-stake height
// exceptions and the stricter stake ceiling of the original retarget rule.
func (p *Params) IsMainNet() bool {
	return p.Net == types.MainNet
}

// IsTestNet reports whether the params describe the public test network.
func (p *Params) IsTestNet() bool {
	return p.Net == types.TestNet
}

// NetName is a human-readable network selector used by configuration files
// and tooling.
type NetName string

// Params returns the chain parameters registered for the name, or nil when
// the name is unknown.
func (n NetName) Params() *Params {
	switch n {
	case "mainnet", "main", "":
		return &MainNetParams
	case "testnet", "test":
		return &TestNetParams
	case "devnet", "dev":
		return &DevNetParams
	case "regtest", "simnet":
		return &RegTestParams
	default:
		return nil
	}
}
