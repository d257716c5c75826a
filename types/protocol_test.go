// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import "testing"

// TestIonNetStringer tests the stringized output for ion net types.
func TestIonNetStringer(t *testing.T) {
	tests := []struct {
		in   IonNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{DevNet, "DevNet"},
		{RegTestNet, "RegTestNet"},
		{0xffffffff, "Unknown IonNet (4294967295)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}
