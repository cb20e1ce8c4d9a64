// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo

import (
	"fmt"

	"github.com/bitmark-inc/minerid/fault"
)

// TxIdLength - number of bytes in a transaction id
const TxIdLength = DigestLength

// MinerInfoRef - reference to a miner identity document bound to a block
//
// TxId names the transaction carrying the identity document; the
// block bind commits that identity to one specific block
type MinerInfoRef struct {
	TxId      Digest    `json:"txId"`
	BlockBind BlockBind `json:"blockBind"`
}

// NewMinerInfoRef - create a reference from a raw txid and a block bind
func NewMinerInfoRef(txId []byte, blockBind *BlockBind) (*MinerInfoRef, error) {

	id, err := DigestFromBytes(txId)
	if nil != err {
		return nil, fault.ErrInvalidTxIdLength
	}

	return &MinerInfoRef{
		TxId:      id,
		BlockBind: *blockBind,
	}, nil
}

// IsEqualTo - structural equality over txid and block bind
func (ref *MinerInfoRef) IsEqualTo(other *MinerInfoRef) bool {
	if nil == ref || nil == other {
		return ref == other
	}
	return ref.TxId == other.TxId &&
		ref.BlockBind.IsEqualTo(&other.BlockBind)
}

// String - display all fields for use by the fmt package (for %s)
func (ref MinerInfoRef) String() string {
	return fmt.Sprintf("(txid: %s, bind: %s)", ref.TxId, ref.BlockBind)
}
