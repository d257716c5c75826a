// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"math/big"

	"gitlab.com/ion-network/iond/types/blocknode"
)

// fakeNode implements blocknode.IBlockNode with an arbitrary anchor height
// so era scenarios far up the chain do not require building millions of
// nodes.  A nil parent simply ends the visible history, which every
// algorithm must tolerate.
type fakeNode struct {
	parent    blocknode.IBlockNode
	timestamp int64
	height    int32
	version   int32
	bits      uint32
}

func (n *fakeNode) Height() int32                { return n.height }
func (n *fakeNode) Version() int32               { return n.version }
func (n *fakeNode) Bits() uint32                 { return n.bits }
func (n *fakeNode) Timestamp() int64             { return n.timestamp }
func (n *fakeNode) WorkSum() *big.Int            { return big.NewInt(0) }
func (n *fakeNode) Parent() blocknode.IBlockNode { return n.parent }

func (n *fakeNode) IsProofOfStake() bool {
	return n.version&blocknode.BlockTypeMask == blocknode.BlockTypeStaking
}

// anchorNode starts a detached chain fragment at the given height.
func anchorNode(height int32, version int32, bits uint32, timestamp int64) *fakeNode {
	return &fakeNode{
		height:    height,
		version:   version,
		bits:      bits,
		timestamp: timestamp,
	}
}

// appendBlock adds one block on top of parent, spacing seconds later.
func appendBlock(parent blocknode.IBlockNode, version int32, bits uint32, spacing int64) *fakeNode {
	return &fakeNode{
		parent:    parent,
		height:    parent.Height() + 1,
		version:   version,
		bits:      bits,
		timestamp: parent.Timestamp() + spacing,
	}
}

// extendChain appends count blocks with constant version, bits and spacing
// and returns the new tip.
func extendChain(parent blocknode.IBlockNode, count int, version int32, bits uint32, spacing int64) blocknode.IBlockNode {
	tip := parent
	for i := 0; i < count; i++ {
		tip = appendBlock(tip, version, bits, spacing)
	}
	return tip
}
