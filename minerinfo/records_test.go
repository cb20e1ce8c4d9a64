// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerinfo_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/minerid/fault"
	"github.com/bitmark-inc/minerid/minerinfo"
)

// byte fill helper for field construction
func filled(n int, value byte) []byte {
	buffer := make([]byte, n)
	for i := range buffer {
		buffer[i] = value
	}
	return buffer
}

// test reference construction from raw field bytes
func TestMinerInfoRefConstruction(t *testing.T) {

	txId := filled(32, 1)
	root := filled(32, 2)
	prevHash := filled(32, 3)
	signature := filled(70, 4)

	bind, err := minerinfo.NewBlockBind(root, prevHash, signature)
	if nil != err {
		t.Fatalf("new block bind error: %s", err)
	}

	ref, err := minerinfo.NewMinerInfoRef(txId, bind)
	if nil != err {
		t.Fatalf("new miner info ref error: %s", err)
	}

	if !bytes.Equal(ref.TxId[:], txId) {
		t.Errorf("txid: %x  expected: %x", ref.TxId[:], txId)
	}
	if !ref.BlockBind.IsEqualTo(bind) {
		t.Errorf("block bind: %s  expected: %s", ref.BlockBind, *bind)
	}

	// the records own copies of the construction buffers
	signature[0] = 0xff
	if 0x04 != ref.BlockBind.Signature[0] {
		t.Errorf("block bind aliases the signature buffer")
	}
	root[0] = 0xff
	if 0x02 != ref.BlockBind.ModifiedMerkleRoot[0] {
		t.Errorf("block bind aliases the merkle root buffer")
	}
}

// test invalid construction lengths
func TestBlockBindConstructionLengths(t *testing.T) {

	root := filled(32, 2)
	prevHash := filled(32, 3)
	signature := filled(70, 4)

	testCases := []struct {
		root      []byte
		prevHash  []byte
		signature []byte
		err       error
	}{
		{filled(31, 2), prevHash, signature, fault.ErrInvalidMerkleRootLength},
		{filled(33, 2), prevHash, signature, fault.ErrInvalidMerkleRootLength},
		{root, filled(31, 3), signature, fault.ErrInvalidPreviousBlockHashLength},
		{root, filled(33, 3), signature, fault.ErrInvalidPreviousBlockHashLength},
		{root, prevHash, filled(68, 4), fault.ErrInvalidSignatureLength},
		{root, prevHash, filled(74, 4), fault.ErrInvalidSignatureLength},
	}

	for i, item := range testCases {
		_, err := minerinfo.NewBlockBind(item.root, item.prevHash, item.signature)
		if item.err != err {
			t.Errorf("%d: new block bind error: %v  expected: %v", i, err, item.err)
		}
	}

	// the limits themselves are accepted
	for _, n := range []int{69, 70, 71, 72, 73} {
		_, err := minerinfo.NewBlockBind(root, prevHash, filled(n, 4))
		if nil != err {
			t.Errorf("signature length %d rejected: %s", n, err)
		}
	}
}

// test structural equality of references
func TestMinerInfoRefEquality(t *testing.T) {

	txId := filled(32, 1)
	root := filled(32, 2)
	prevHash := filled(32, 3)
	signature := filled(70, 4)

	makeRef := func(txId []byte, root []byte, prevHash []byte, signature []byte) *minerinfo.MinerInfoRef {
		bind, err := minerinfo.NewBlockBind(root, prevHash, signature)
		if nil != err {
			t.Fatalf("new block bind error: %s", err)
		}
		ref, err := minerinfo.NewMinerInfoRef(txId, bind)
		if nil != err {
			t.Fatalf("new miner info ref error: %s", err)
		}
		return ref
	}

	a := makeRef(txId, root, prevHash, signature)

	// reflexive
	if !a.IsEqualTo(a) {
		t.Errorf("reference not equal to itself")
	}

	// symmetric
	b := makeRef(txId, root, prevHash, signature)
	if !a.IsEqualTo(b) || !b.IsEqualTo(a) {
		t.Errorf("identically built references unequal")
	}

	// any single changed field makes them unequal
	unequal := []*minerinfo.MinerInfoRef{
		makeRef(filled(32, 5), root, prevHash, signature),
		makeRef(txId, filled(32, 6), prevHash, signature),
		makeRef(txId, root, filled(32, 7), signature),
		makeRef(txId, root, prevHash, filled(70, 8)),
	}
	for i, c := range unequal {
		if a.IsEqualTo(c) {
			t.Errorf("%d: references unexpectedly equal: %s and %s", i, a, c)
		}
		if c.IsEqualTo(a) {
			t.Errorf("%d: references unexpectedly equal: %s and %s", i, c, a)
		}
	}

	// a single changed signature byte is enough
	tampered := filled(70, 4)
	tampered[69] = 5
	d := makeRef(txId, root, prevHash, tampered)
	if a.IsEqualTo(d) || d.IsEqualTo(a) {
		t.Errorf("signature byte change not detected by equality")
	}
}
