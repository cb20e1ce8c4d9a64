// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minerinfo - miner information reference records
//
// A block producer embeds a reference to its miner identity document
// inside a tagged null-data output script.  The reference binds the
// identity document's txid to one specific block by a signature over
// a commitment derived from that block.
//
// This package decodes the fixed grammar of the reference script
// payload into validated record values and checks the signature
// binding once a public key has been resolved for the txid.  Locating
// the script inside a transaction, resolving the public key and
// interpreting the identity document are the caller's concern.
package minerinfo
