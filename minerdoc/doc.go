// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minerdoc - miner identity documents
//
// The JSON document a miner info reference points at by txid.  It
// carries the miner id and revocation key sets and, during a
// revocation, the revocation message.  The current miner id key from
// this document is what verifies a block bind signature.
package minerdoc
