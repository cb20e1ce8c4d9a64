// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo

import (
	"bytes"
	"fmt"

	"github.com/bitmark-inc/minerid/fault"
)

// signature length limits
//
// the accepted range covers the size variance of DER encoded ECDSA
// signatures on the ledger's curve; a different signature scheme
// needs a different SignatureLengthPolicy, not a change to these
// defaults
const (
	SignatureMinimumLength = 69
	SignatureMaximumLength = 73
)

// SignatureLengthPolicy - accepted range for the signature field
//
// an external policy input to the parser
type SignatureLengthPolicy struct {
	Minimum int
	Maximum int
}

// DefaultSignatureLengthPolicy - the range for DER encoded ECDSA signatures
var DefaultSignatureLengthPolicy = SignatureLengthPolicy{
	Minimum: SignatureMinimumLength,
	Maximum: SignatureMaximumLength,
}

// IsValid - check the policy describes a usable range
func (policy SignatureLengthPolicy) IsValid() bool {
	return policy.Minimum > 0 &&
		policy.Maximum >= policy.Minimum &&
		policy.Maximum <= 255
}

// BlockBind - the signed commitment to one specific block
//
// the signature covers the concatenation of the modified merkle root
// and the previous block hash
type BlockBind struct {
	ModifiedMerkleRoot Digest    `json:"modifiedMerkleRoot"`
	PreviousBlockHash  Digest    `json:"previousBlockHash"`
	Signature          Signature `json:"signature"`
}

// NewBlockBind - create a block bind from raw field bytes
//
// all arguments are copied so the bind outlives the buffers they came from
func NewBlockBind(modifiedMerkleRoot []byte, previousBlockHash []byte, signature []byte) (*BlockBind, error) {

	root, err := DigestFromBytes(modifiedMerkleRoot)
	if nil != err {
		return nil, fault.ErrInvalidMerkleRootLength
	}

	prevHash, err := DigestFromBytes(previousBlockHash)
	if nil != err {
		return nil, fault.ErrInvalidPreviousBlockHashLength
	}

	if len(signature) < SignatureMinimumLength || len(signature) > SignatureMaximumLength {
		return nil, fault.ErrInvalidSignatureLength
	}

	sig := make(Signature, len(signature))
	copy(sig, signature)

	return &BlockBind{
		ModifiedMerkleRoot: root,
		PreviousBlockHash:  prevHash,
		Signature:          sig,
	}, nil
}

// IsEqualTo - structural equality over all three fields
//
// the full signature byte sequence takes part in the comparison
func (bind *BlockBind) IsEqualTo(other *BlockBind) bool {
	if nil == bind || nil == other {
		return bind == other
	}
	return bind.ModifiedMerkleRoot == other.ModifiedMerkleRoot &&
		bind.PreviousBlockHash == other.PreviousBlockHash &&
		bytes.Equal(bind.Signature, other.Signature)
}

// SignedMessage - the byte sequence the signature must cover
//
// modified merkle root followed by previous block hash
func (bind *BlockBind) SignedMessage() []byte {
	message := make([]byte, 0, 2*DigestLength)
	message = append(message, bind.ModifiedMerkleRoot[:]...)
	message = append(message, bind.PreviousBlockHash[:]...)
	return message
}

// String - display all fields for use by the fmt package (for %s)
func (bind BlockBind) String() string {
	return fmt.Sprintf("(root: %s, prev: %s, sig: %s)",
		bind.ModifiedMerkleRoot, bind.PreviousBlockHash, bind.Signature)
}
