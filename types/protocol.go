// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import "fmt"

// IonNet represents which Ion network a message belongs to.
type IonNet uint32

// Constants used to indicate the network. The hybrid difficulty rules carry
// historical exceptions that exist only on MainNet, so network identity is
// threaded explicitly through the consensus code instead of being read from
// a process-wide singleton.
const (
	// MainNet represents the main ion network.
	MainNet IonNet = 0x69_6f_6e_64

	// TestNet represents the public test network.
	TestNet IonNet = 0x74_69_6f_6e

	// DevNet represents an ephemeral developer network.
	DevNet IonNet = 0x64_69_6f_6e

	// RegTestNet represents the regression test network.
	RegTestNet IonNet = 0x72_69_6f_6e
)

// inStrings is a map of ion networks back to their constant names for
// pretty printing.
var inStrings = map[IonNet]string{
	MainNet:    "MainNet",
	TestNet:    "TestNet",
	DevNet:     "DevNet",
	RegTestNet: "RegTestNet",
}

// String returns the IonNet in human-readable form.
func (n IonNet) String() string {
	if s, ok := inStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown IonNet (%d)", uint32(n))
}
