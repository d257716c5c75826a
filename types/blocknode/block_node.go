// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocknode

import (
	"math/big"

	"gitlab.com/ion-network/iond/types/pow"
)

// Block version tag bits.  A block declares itself proof-of-work or
// proof-of-stake through these bits of its version field.  Heights below the
// proof-of-stake activation can still carry the staking tag; the historical
// mainnet exception table in chaincfg records where that actually happened.
const (
	// BlockTypeMask isolates the block-kind tag within the version field.
	BlockTypeMask int32 = 0x00000300

	// BlockTypePoW is the version tag of a proof-of-work block.
	BlockTypePoW int32 = 0x00000100

	// BlockTypeStaking is the version tag of a proof-of-stake block.
	BlockTypeStaking int32 = 0x00000200
)

// IBlockNode is a read-only view of one accepted block's header metadata
// within the block index.  The chain index store owns all nodes; they are
// never mutated after creation, so every method is safe for concurrent
// access without locks.
type IBlockNode interface {
	Height() int32
	Version() int32
	Bits() uint32
	Timestamp() int64
	Parent() IBlockNode
	WorkSum() *big.Int
	IsProofOfStake() bool
}

// BlockNode represents a block within the block chain and is primarily used
// to aid in selecting the best chain to be the main chain.
type BlockNode struct {
	// NOTE: Additions, deletions, or modifications to the order of the
	// definitions in this struct should not be changed without considering
	// how it affects alignment on 64-bit platforms.  The current order is
	// specifically crafted to result in minimal padding.  There will be
	// hundreds of thousands of these in memory, so a few extra bytes of
	// padding adds up.

	parent  IBlockNode // parent is the parent block for this node.
	workSum *big.Int   // workSum is the total amount of work in the chain up to and including this node.

	// Some fields from block headers to aid in best chain selection and
	// difficulty retargeting.  These must be treated as immutable.
	timestamp int64
	height    int32
	version   int32
	bits      uint32
}

// NewBlockNode returns a new block node for the given header fields and
// parent node, calculating the height and workSum from the respective fields
// on the parent.  This function is NOT safe for concurrent access.
func NewBlockNode(version int32, bits uint32, timestamp int64, parent IBlockNode) *BlockNode {
	node := &BlockNode{
		workSum:   pow.CalcWork(bits),
		timestamp: timestamp,
		version:   version,
		bits:      bits,
	}
	if parent != nil {
		node.parent = parent
		node.height = parent.Height() + 1
		node.workSum = node.workSum.Add(parent.WorkSum(), node.workSum)
	}
	return node
}

func (node *BlockNode) Height() int32     { return node.height }
func (node *BlockNode) Version() int32    { return node.version }
func (node *BlockNode) Bits() uint32      { return node.bits }
func (node *BlockNode) Timestamp() int64  { return node.timestamp }
func (node *BlockNode) WorkSum() *big.Int { return node.workSum }

// Parent returns the parent node, or nil for the genesis block.
func (node *BlockNode) Parent() IBlockNode { return node.parent }

// IsProofOfStake reports whether the node's version field carries the
// staking tag.
func (node *BlockNode) IsProofOfStake() bool {
	return node.version&BlockTypeMask == BlockTypeStaking
}

// Ancestor returns the ancestor block node at the provided height by
// following the chain backwards from this node.  The returned block will be
// nil when a height is requested that is after the height of the passed node
// or is less than zero.
func (node *BlockNode) Ancestor(height int32) IBlockNode {
	if height < 0 || height > node.height {
		return nil
	}

	var n IBlockNode = node
	for n != nil && n.Height() != height {
		n = n.Parent()
	}

	return n
}
