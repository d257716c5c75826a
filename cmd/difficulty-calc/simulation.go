// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"

	"gitlab.com/ion-network/iond/node/chaindata"
	"gitlab.com/ion-network/iond/types/blocknode"
	"gitlab.com/ion-network/iond/types/chaincfg"
	"gitlab.com/ion-network/iond/types/pow"
)

// BlockRow is one simulated block in the CSV export.
type BlockRow struct {
	Height int32  `csv:"height"`
	Kind   string `csv:"kind"`
	Time   int64  `csv:"time"`
	Bits   string `csv:"bits"`
	Target string `csv:"target"`
	Work   string `csv:"work"`
}

// Simulator grows a synthetic chain block by block, asking the consensus
// rules for the required difficulty of each next block exactly the way block
// validation would.
type Simulator struct {
	params       *chaincfg.Params
	workSpacing  int64
	stakeSpacing int64
}

func NewSimulator(params *chaincfg.Params, cfg SimulationConfig) *Simulator {
	s := &Simulator{
		params:       params,
		workSpacing:  cfg.WorkSpacing,
		stakeSpacing: cfg.StakeSpacing,
	}
	if s.workSpacing == 0 {
		s.workSpacing = params.Consensus.PowTargetSpacing
	}
	if s.stakeSpacing == 0 {
		s.stakeSpacing = params.Consensus.PosTargetSpacing
	}
	return s
}

// Run simulates count blocks from genesis and returns one row per block.
// Block kinds follow the height classifier; inside the hybrid era the two
// kinds alternate.
func (s *Simulator) Run(count int32) []BlockRow {
	rows := make([]BlockRow, 0, count)

	var tip blocknode.IBlockNode
	timestamp := s.params.GenesisTime

	for height := int32(0); height < count; height++ {
		stake := chaindata.IsProofOfStakeHeight(height, s.params)
		if height >= s.params.Consensus.POSPOWStartHeight {
			stake = height%2 == 1
		}

		version := blocknode.BlockTypePoW
		kind := "pow"
		spacing := s.workSpacing
		if stake {
			version = blocknode.BlockTypeStaking
			kind = "pos"
			spacing = s.stakeSpacing
		}

		bits := s.params.GenesisBits
		if tip != nil {
			bits = chaindata.GetNextWorkRequired(tip, s.params, !stake)
			timestamp += spacing
		}

		node := blocknode.NewBlockNode(version, bits, timestamp, tip)
		rows = append(rows, BlockRow{
			Height: node.Height(),
			Kind:   kind,
			Time:   node.Timestamp(),
			Bits:   fmt.Sprintf("%08x", bits),
			Target: fmt.Sprintf("%064x", pow.CompactToBig(bits)),
			Work:   node.WorkSum().String(),
		})
		tip = node
	}

	return rows
}
