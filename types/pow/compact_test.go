// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBigToCompact ensures BigToCompact converts big integers to the expected
// compact representation.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  int64
		out uint32
	}{
		{0, 0},
		{-1, 25231360},
		{1, 0x01010000},
		{0x80, 0x02008000},
	}

	for x, test := range tests {
		n := big.NewInt(test.in)
		r := BigToCompact(n)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %d want %d\n",
				x, r, test.out)
			return
		}
	}
}

// TestCompactToBig ensures CompactToBig converts numbers using the compact
// representation to the expected big integers.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10223411, 0},
		{0x01003456, 0x00},
		{0x01123456, 0x12},
		{0x02008000, 0x80},
		{0x05009234, 0x92340000},
		{0x04923456, -0x12345600},
		{0x04123456, 0x12345600},
	}

	for x, test := range tests {
		n := CompactToBig(test.in)
		want := big.NewInt(test.out)
		if n.Cmp(want) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %d want %d\n",
				x, n, want)
			return
		}
	}
}

// TestCompactRoundTrip ensures that decoding then re-encoding a value
// produced by the encoder is idempotent.
func TestCompactRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(1),
		big.NewInt(0x7fffff),
		big.NewInt(0x800000),
		new(big.Int).Lsh(big.NewInt(0x1fff0), 220),
		new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne),
		new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne),
	}

	for _, v := range values {
		compact := BigToCompact(v)
		decoded := CompactToBig(compact)
		assert.Equal(t, compact, BigToCompact(decoded),
			"re-encode of %064x must be idempotent", v)
	}
}

// TestDecodeCompact ensures the sign and overflow conditions are reported
// exactly as the reference client does.
func TestDecodeCompact(t *testing.T) {
	tests := []struct {
		name     string
		in       uint32
		negative bool
		overflow bool
	}{
		{"zero mantissa never negative", 0x00800000, false, false},
		{"plain value", 0x1d00ffff, false, false},
		{"negative value", 0x04923456, true, false},
		{"exponent 34 single byte ok", 0x220000ff, false, false},
		{"exponent 35 overflows", 0x23000001, false, true},
		{"two byte mantissa exponent 34 overflows", 0x22000100, false, true},
		{"three byte mantissa exponent 33 overflows", 0x21010000, false, true},
		{"zero mantissa never overflows", 0xff000000, false, false},
	}

	for _, test := range tests {
		bn, negative, overflow := DecodeCompact(test.in)
		assert.Equal(t, test.negative, negative, test.name)
		assert.Equal(t, test.overflow, overflow, test.name)
		assert.True(t, bn.Sign() >= 0,
			"%s: DecodeCompact must report magnitude only", test.name)
	}
}

// TestCalcWork ensures CalcWork returns zero for invalid bits and the
// expected hash count otherwise.
func TestCalcWork(t *testing.T) {
	if CalcWork(0x00000000).Sign() != 0 {
		t.Error("CalcWork: zero target must produce zero work")
	}
	if CalcWork(0x04923456).Sign() != 0 {
		t.Error("CalcWork: negative target must produce zero work")
	}

	// Work for bits 0x1d00ffff is 2^32 + 2^16 + 1.
	got := CalcWork(0x1d00ffff)
	want := big.NewInt(4295032833)
	if got.Cmp(want) != 0 {
		t.Errorf("CalcWork: got %v want %v", got, want)
	}
}
