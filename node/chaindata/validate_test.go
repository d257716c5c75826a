// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/ion-network/iond/types/chaincfg"
	"gitlab.com/ion-network/iond/types/chainhash"
)

func TestValidateProofOfWork(t *testing.T) {
	mainnet := &chaincfg.MainNetParams

	lowHash, err := chainhash.NewHashFromStr("01")
	require.NoError(t, err)
	highHash, err := chainhash.NewHashFromStr(
		"0000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     chainhash.Hash
		bits     uint32
		wantCode ErrorCode
		wantOK   bool
	}{
		{
			name:   "hash below target",
			hash:   *lowHash,
			bits:   mainnet.Consensus.PowLimitBits,
			wantOK: true,
		},
		{
			name:   "zero hash at the ceiling",
			hash:   chainhash.Hash{},
			bits:   mainnet.Consensus.PowLimitBits,
			wantOK: true,
		},
		{
			name:     "hash above target",
			hash:     *highHash,
			bits:     0x1d00ffff,
			wantCode: ErrHighHash,
		},
		{
			// Even a zero hash cannot satisfy a target above the
			// network ceiling.
			name:     "target above the ceiling",
			hash:     chainhash.Hash{},
			bits:     0x1f0fffff,
			wantCode: ErrUnexpectedDifficulty,
		},
		{
			name:     "negative target",
			hash:     chainhash.Hash{},
			bits:     0x1e80ffff,
			wantCode: ErrUnexpectedDifficulty,
		},
		{
			name:     "overflowing target",
			hash:     chainhash.Hash{},
			bits:     0x23000001,
			wantCode: ErrUnexpectedDifficulty,
		},
		{
			name:     "zero target",
			hash:     chainhash.Hash{},
			bits:     0x00000000,
			wantCode: ErrUnexpectedDifficulty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProofOfWork(tt.hash, tt.bits, mainnet)
			assert.Equal(t, tt.wantOK, CheckProofOfWork(tt.hash, tt.bits, mainnet))

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var rerr RuleError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantCode, rerr.ErrorCode)
		})
	}
}
