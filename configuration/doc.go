// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// The signature length range accepted by the reference parser depends
// on the ledger's signature scheme, so it is an operator input rather
// than a constant; the cache expiry for resolved keys likewise.
package configuration
