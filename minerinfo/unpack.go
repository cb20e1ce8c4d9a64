// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo

import (
	"bytes"

	"github.com/bitmark-inc/minerid/fault"
	"github.com/bitmark-inc/minerid/util"
)

// SupportedVersion - the only script version currently defined
const SupportedVersion = 0

// script preamble: OP_FALSE OP_RETURN push-4 protocol-id
var scriptPreamble = []byte{0x00, 0x6a, 0x04, 0x60, 0x1d, 0xfa, 0xce}

// ParseMinerInfoRef - decode a miner info reference from a script payload
//
// the payload is the script after the preamble; use PayloadFromScript
// to strip the preamble from a whole output script
//
// layout:
//   [1][version]
//   [32][txid]
//   [32][modified merkle root]
//   [32][previous block hash]
//   [n][signature]   n in the default signature length range
//
// the first field violation stops the walk; a declared length
// overrunning the buffer counts as that field's length violation
func ParseMinerInfoRef(payload []byte) (*MinerInfoRef, error) {
	return ParseMinerInfoRefWithPolicy(payload, DefaultSignatureLengthPolicy)
}

// ParseMinerInfoRefWithPolicy - decode with an explicit signature length range
func ParseMinerInfoRefWithPolicy(payload []byte, policy SignatureLengthPolicy) (*MinerInfoRef, error) {

	if !policy.IsValid() {
		return nil, fault.ErrInvalidSignaturePolicy
	}

	n := 0

	// version
	version, count := util.NextField(payload[n:])
	if 0 == count || 1 != len(version) || SupportedVersion != version[0] {
		return nil, fault.ErrScriptVersionUnsupported
	}
	n += count

	// miner info txid
	txId, count := util.NextField(payload[n:])
	if 0 == count || TxIdLength != len(txId) {
		return nil, fault.ErrInvalidTxIdLength
	}
	n += count

	// modified merkle root
	root, count := util.NextField(payload[n:])
	if 0 == count || DigestLength != len(root) {
		return nil, fault.ErrInvalidMerkleRootLength
	}
	n += count

	// previous block hash
	prevHash, count := util.NextField(payload[n:])
	if 0 == count || DigestLength != len(prevHash) {
		return nil, fault.ErrInvalidPreviousBlockHashLength
	}
	n += count

	// signature
	signature, count := util.NextField(payload[n:])
	if 0 == count || len(signature) < policy.Minimum || len(signature) > policy.Maximum {
		return nil, fault.ErrInvalidSignatureLength
	}

	rootDigest, err := DigestFromBytes(root)
	if nil != err {
		return nil, fault.ErrInvalidMerkleRootLength
	}
	prevHashDigest, err := DigestFromBytes(prevHash)
	if nil != err {
		return nil, fault.ErrInvalidPreviousBlockHashLength
	}
	txIdDigest, err := DigestFromBytes(txId)
	if nil != err {
		return nil, fault.ErrInvalidTxIdLength
	}

	sig := make(Signature, len(signature))
	copy(sig, signature)

	return &MinerInfoRef{
		TxId: txIdDigest,
		BlockBind: BlockBind{
			ModifiedMerkleRoot: rootDigest,
			PreviousBlockHash:  prevHashDigest,
			Signature:          sig,
		},
	}, nil
}

// PayloadFromScript - strip the fixed preamble from a whole output script
//
// the preamble is OP_FALSE OP_RETURN followed by a 4 byte push of the
// protocol identifier; anything else is not a miner info script
func PayloadFromScript(script []byte) ([]byte, error) {
	if len(script) < len(scriptPreamble) || !bytes.Equal(script[:len(scriptPreamble)], scriptPreamble) {
		return nil, fault.ErrNotMinerInfoScript
	}
	return script[len(scriptPreamble):], nil
}
