// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// mainNetPosHeightExceptions lists the main network heights below the
// proof-of-stake activation height whose blocks are nevertheless
// proof-of-stake.  The intervals are closed on both ends.
//
// These blocks were accepted under a classification bug during the original
// mainnet launch window and the table was frozen afterwards so that every
// node replays history identically.  The content is a consensus fact, not a
// policy: changing a single bound forks the chain.
var mainNetPosHeightExceptions = []HeightRange{
	{455, 479},
	{481, 489},
	{492, 492},
	{501, 501},
	{691, 691},
	{702, 703},
	{721, 721},
	{806, 811},
	{876, 876},
	{889, 889},
	{907, 907},
	{913, 914},
	{916, 929},
	{931, 931},
	{933, 942},
	{945, 947},
	{949, 960},
	{962, 962},
	{969, 969},
	{991, 991},
}
