// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerdoc

import (
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/btcec"

	"github.com/bitmark-inc/minerid/fault"
)

// wire form of the document
type jsonDocument struct {
	Version              string          `json:"version"`
	Height               int32           `json:"height"`
	MinerId              string          `json:"minerId"`
	PrevMinerId          string          `json:"prevMinerId"`
	PrevMinerIdSig       string          `json:"prevMinerIdSig"`
	RevocationKey        string          `json:"revocationKey"`
	PrevRevocationKey    string          `json:"prevRevocationKey"`
	PrevRevocationKeySig string          `json:"prevRevocationKeySig"`
	RevocationMessage    *struct {
		CompromisedMinerId string `json:"compromised_minerId"`
	} `json:"revocationMessage,omitempty"`
	RevocationMessageSig *struct {
		Sig1 string `json:"sig1"`
		Sig2 string `json:"sig2"`
	} `json:"revocationMessageSig,omitempty"`
	MinerContact json.RawMessage `json:"minerContact,omitempty"`
}

// ParseDocument - decode and validate a miner identity document
//
// unknown document versions are rejected, matching the strictness of
// the reference script parser
func ParseDocument(data []byte) (*Document, error) {

	var wire jsonDocument
	if err := json.Unmarshal(data, &wire); nil != err {
		return nil, fault.ErrNotIdentityDocument
	}

	if V0_3.String() != wire.Version {
		return nil, fault.ErrUnsupportedDocumentVersion
	}

	if "" == wire.MinerId || "" == wire.PrevMinerId || "" == wire.PrevMinerIdSig {
		return nil, fault.ErrMinerIdKeysMissing
	}
	if err := validateKey(wire.MinerId); nil != err {
		return nil, err
	}
	if err := validateKey(wire.PrevMinerId); nil != err {
		return nil, err
	}

	if "" == wire.RevocationKey || "" == wire.PrevRevocationKey || "" == wire.PrevRevocationKeySig {
		return nil, fault.ErrRevocationKeysMissing
	}
	if err := validateKey(wire.RevocationKey); nil != err {
		return nil, err
	}
	if err := validateKey(wire.PrevRevocationKey); nil != err {
		return nil, err
	}

	doc := &Document{
		Version: V0_3,
		Height:  wire.Height,
		MinerId: KeySet{
			Key:        wire.MinerId,
			PrevKey:    wire.PrevMinerId,
			PrevKeySig: wire.PrevMinerIdSig,
		},
		Revocation: KeySet{
			Key:        wire.RevocationKey,
			PrevKey:    wire.PrevRevocationKey,
			PrevKeySig: wire.PrevRevocationKeySig,
		},
	}

	if nil != wire.RevocationMessage {
		if "" == wire.RevocationMessage.CompromisedMinerId {
			return nil, fault.ErrCompromisedMinerIdMissing
		}
		if err := validateKey(wire.RevocationMessage.CompromisedMinerId); nil != err {
			return nil, err
		}
		if nil == wire.RevocationMessageSig ||
			"" == wire.RevocationMessageSig.Sig1 ||
			"" == wire.RevocationMessageSig.Sig2 {
			return nil, fault.ErrRevocationSignatureMissing
		}
		doc.RevocationMessage = &RevocationMessage{
			CompromisedMinerId: wire.RevocationMessage.CompromisedMinerId,
			Sig1:               wire.RevocationMessageSig.Sig1,
			Sig2:               wire.RevocationMessageSig.Sig2,
		}
	}

	if len(wire.MinerContact) > 0 {
		var contact map[string]json.RawMessage
		if err := json.Unmarshal(wire.MinerContact, &contact); nil != err {
			return nil, fault.ErrMinerContactNotObject
		}
		doc.MinerContact = wire.MinerContact
	}

	return doc, nil
}

// a key must be a hex encoded point on the ledger's curve
func validateKey(key string) error {
	buffer, err := hex.DecodeString(key)
	if nil != err {
		return fault.ErrKeyNotHex
	}
	_, err = btcec.ParsePubKey(buffer, btcec.S256())
	if nil != err {
		return fault.ErrInvalidPublicKey
	}
	return nil
}

// MarshalJSON - encode back to the wire document layout
func (doc Document) MarshalJSON() ([]byte, error) {
	wire := jsonDocument{
		Version:              doc.Version.String(),
		Height:               doc.Height,
		MinerId:              doc.MinerId.Key,
		PrevMinerId:          doc.MinerId.PrevKey,
		PrevMinerIdSig:       doc.MinerId.PrevKeySig,
		RevocationKey:        doc.Revocation.Key,
		PrevRevocationKey:    doc.Revocation.PrevKey,
		PrevRevocationKeySig: doc.Revocation.PrevKeySig,
		MinerContact:         doc.MinerContact,
	}
	if nil != doc.RevocationMessage {
		wire.RevocationMessage = &struct {
			CompromisedMinerId string `json:"compromised_minerId"`
		}{
			CompromisedMinerId: doc.RevocationMessage.CompromisedMinerId,
		}
		wire.RevocationMessageSig = &struct {
			Sig1 string `json:"sig1"`
			Sig2 string `json:"sig2"`
		}{
			Sig1: doc.RevocationMessage.Sig1,
			Sig2: doc.RevocationMessage.Sig2,
		}
	}
	return json.Marshal(wire)
}
