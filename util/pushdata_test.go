// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/minerid/util"
)

var fieldTests = []struct {
	encoded []byte
	data    []byte
}{
	{[]byte{0x00}, []byte{}},
	{[]byte{0x01, 0xab}, []byte{0xab}},
	{[]byte{0x03, 0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03}},
	{[]byte{0x05, 0xde, 0xad, 0xbe, 0xef, 0x99}, []byte{0xde, 0xad, 0xbe, 0xef, 0x99}},
}

var fieldTruncatedTests = [][]byte{
	{},
	{0x01},
	{0x02, 0xab},
	{0x20, 0x00, 0x00, 0x00},
	{0xff},
}

func TestNextField(t *testing.T) {

	for i, item := range fieldTests {
		data, count := util.NextField(item.encoded)
		if count != len(item.encoded) {
			t.Errorf("%d: NextField(%x) consumed: %d  expected: %d", i, item.encoded, count, len(item.encoded))
		}
		if !bytes.Equal(data, item.data) {
			t.Errorf("%d: NextField(%x) -> %x  expected: %x", i, item.encoded, data, item.data)
		}

		// trailing bytes must not change the result
		b := append([]byte{}, item.encoded...)
		suffix := []byte{0xff, 0x97, 0x23}
		b = append(b, suffix...)
		data, count = util.NextField(b)
		if count != len(item.encoded) {
			t.Errorf("%d: NextField(%x) consumed: %d  expected: %d", i, b, count, len(item.encoded))
		}
		if !bytes.Equal(data, item.data) {
			t.Errorf("%d: NextField(%x) -> %x  expected: %x", i, b, data, item.data)
		}
	}
}

func TestNextFieldTruncated(t *testing.T) {

	for i, item := range fieldTruncatedTests {
		data, count := util.NextField(item)
		if 0 != count {
			t.Errorf("%d: NextField(%x) consumed: %d  expected: 0", i, item, count)
		}
		if nil != data {
			t.Errorf("%d: NextField(%x) -> %x  expected: nil", i, item, data)
		}
	}
}

func TestToField(t *testing.T) {

	for i, item := range fieldTests {
		result := util.ToField([]byte{}, item.data)
		if !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToField(%x) -> %x  expected: %x", i, item.data, result, item.encoded)
		}

		// round trip
		data, count := util.NextField(result)
		if count != len(result) || !bytes.Equal(data, item.data) {
			t.Errorf("%d: NextField(ToField(%x)) -> %x", i, item.data, data)
		}
	}

	// oversized data cannot be encoded
	big := make([]byte, util.MaximumFieldLength+1)
	result := util.ToField([]byte{0x01}, big)
	if !bytes.Equal(result, []byte{0x01}) {
		t.Errorf("ToField(oversize) modified buffer: %x", result)
	}
}
