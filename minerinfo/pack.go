// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo

import (
	"github.com/bitmark-inc/minerid/util"
)

// Packed - a raw encoded reference payload
type Packed []byte

// Pack - encode a reference to the wire payload layout
//
// the exact inverse of ParseMinerInfoRef
func (ref *MinerInfoRef) Pack() Packed {
	buffer := make([]byte, 0, 4*(1+DigestLength)+len(ref.BlockBind.Signature)+1)
	buffer = util.ToField(buffer, []byte{SupportedVersion})
	buffer = util.ToField(buffer, ref.TxId[:])
	buffer = util.ToField(buffer, ref.BlockBind.ModifiedMerkleRoot[:])
	buffer = util.ToField(buffer, ref.BlockBind.PreviousBlockHash[:])
	buffer = util.ToField(buffer, ref.BlockBind.Signature)
	return Packed(buffer)
}

// Script - encode a reference to a whole output script
//
// prepends the fixed preamble to the packed payload
func (ref *MinerInfoRef) Script() []byte {
	payload := ref.Pack()
	script := make([]byte, 0, len(scriptPreamble)+len(payload))
	script = append(script, scriptPreamble...)
	return append(script, payload...)
}
