// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec"
)

// Verify - check the block bind signature against a resolved public key
//
// the signed message is the modified merkle root followed by the
// previous block hash, hashed with SHA-256 and checked as a DER
// encoded ECDSA signature on the secp256k1 curve
//
// a false result is a normal verification outcome, never a fault:
// a structurally valid bind with a signature by the wrong key, over
// the wrong block, or simply undecodable verifies false
func Verify(bind *BlockBind, publicKey []byte) bool {

	pub, err := btcec.ParsePubKey(publicKey, btcec.S256())
	if nil != err {
		return false
	}

	sig, err := btcec.ParseDERSignature(bind.Signature, btcec.S256())
	if nil != err {
		return false
	}

	digest := sha256.Sum256(bind.SignedMessage())
	return sig.Verify(digest[:], pub)
}
