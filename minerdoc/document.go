// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerdoc

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/minerid/fault"
)

// Version - enumeration of supported document versions
type Version int

// currently only one version is defined
const (
	V0_3 Version = iota
)

// String - the version as it appears on the wire
func (version Version) String() string {
	switch version {
	case V0_3:
		return "0.3"
	default:
		return "*unknown*"
	}
}

// KeySet - a current key with its predecessor and the rolling signature
//
// all three values are hex strings exactly as they appear in the document
type KeySet struct {
	Key        string `json:"key"`
	PrevKey    string `json:"prevKey"`
	PrevKeySig string `json:"prevKeySig"`
}

// IsEqualTo - structural equality
func (keySet KeySet) IsEqualTo(other KeySet) bool {
	return keySet == other
}

// RevocationMessage - notice that a miner id key is compromised
type RevocationMessage struct {
	CompromisedMinerId string `json:"compromised_minerId"`
	Sig1               string `json:"sig1"`
	Sig2               string `json:"sig2"`
}

// IsEqualTo - structural equality
func (message RevocationMessage) IsEqualTo(other RevocationMessage) bool {
	return message == other
}

// Document - a validated miner identity document
type Document struct {
	Version           Version
	Height            int32
	MinerId           KeySet
	Revocation        KeySet
	RevocationMessage *RevocationMessage
	MinerContact      json.RawMessage
}

// IsEqualTo - structural equality over all fields
func (doc *Document) IsEqualTo(other *Document) bool {
	if nil == doc || nil == other {
		return doc == other
	}
	if doc.Version != other.Version ||
		doc.Height != other.Height ||
		!doc.MinerId.IsEqualTo(other.MinerId) ||
		!doc.Revocation.IsEqualTo(other.Revocation) {
		return false
	}
	if (nil == doc.RevocationMessage) != (nil == other.RevocationMessage) {
		return false
	}
	if nil != doc.RevocationMessage && !doc.RevocationMessage.IsEqualTo(*other.RevocationMessage) {
		return false
	}
	return bytes.Equal(doc.MinerContact, other.MinerContact)
}

// MinerIdKey - the current miner id public key as raw bytes
//
// this is the key a block bind signature verifies against
func (doc *Document) MinerIdKey() ([]byte, error) {
	key, err := hex.DecodeString(doc.MinerId.Key)
	if nil != err {
		return nil, fault.ErrKeyNotHex
	}
	return key, nil
}
