// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"

	"gitlab.com/ion-network/iond/types/chaincfg"
	"gitlab.com/ion-network/iond/types/chainhash"
	"gitlab.com/ion-network/iond/types/pow"
)

// ValidateProofOfWork ensures the claimed target difficulty is in range and
// that the block hash is less than the target difficulty as claimed.
//
// A compact value that decodes negative, overflows 256 bits, decodes to
// zero, or exceeds the network proof-of-work ceiling is a rule violation,
// not a runtime error; the same applies to a hash above the target.
func ValidateProofOfWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params) error {
	target, negative, overflow := pow.DecodeCompact(bits)

	// Check range.
	if negative || overflow || target.Sign() == 0 {
		str := fmt.Sprintf("block target difficulty of %08x is malformed", bits)
		return NewRuleError(ErrUnexpectedDifficulty, str)
	}
	if target.Cmp(params.Consensus.PowLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is higher than max of %064x",
			target, params.Consensus.PowLimit)
		return NewRuleError(ErrUnexpectedDifficulty, str)
	}

	// Check proof of work matches claimed amount.
	hashNum := pow.HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected max of %064x",
			hashNum, target)
		return NewRuleError(ErrHighHash, str)
	}

	return nil
}

// CheckProofOfWork is the predicate form of ValidateProofOfWork.  It has no
// side effects and is safe for concurrent access.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	return ValidateProofOfWork(hash, bits, params) == nil
}
