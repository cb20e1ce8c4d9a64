// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// MaximumFieldLength - highest length a single byte prefix can declare
const MaximumFieldLength = 255

// NextField - read one length-prefixed field from the front of a buffer
//
// the first byte declares the length n of the data that follows
//
// returns the n data bytes and the total number of bytes consumed
// (1 + n) as second value
// returns nil, 0 if the buffer is empty or the declared length
// overruns the remaining bytes
//
// the returned slice aliases the buffer; callers keeping the data
// beyond the life of the buffer must copy it
func NextField(buffer []byte) ([]byte, int) {
	if 0 == len(buffer) {
		return nil, 0
	}

	n := int(buffer[0])
	if n > len(buffer)-1 {
		return nil, 0
	}

	return buffer[1 : 1+n], 1 + n
}

// ToField - append one length-prefixed field to a buffer
//
// the inverse of NextField; data longer than MaximumFieldLength
// cannot be represented and returns the buffer unchanged
func ToField(buffer []byte, data []byte) []byte {
	if len(data) > MaximumFieldLength {
		return buffer
	}
	buffer = append(buffer, byte(len(data)))
	return append(buffer, data...)
}
