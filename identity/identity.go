// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - resolve miner public keys from reference txids
//
// The collaborator boundary between a decoded miner info reference
// and signature verification: somebody has to turn the txid into the
// current miner id public key.  Retrieval of the identity document is
// delegated to a resolver callback; this package parses the document,
// extracts the key and caches the result.
package identity

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minerid/fault"
	"github.com/bitmark-inc/minerid/minerdoc"
	"github.com/bitmark-inc/minerid/minerinfo"
)

// Store - anything that can resolve a public key for a reference txid
type Store interface {
	PublicKey(txId minerinfo.Digest) ([]byte, error)
}

// ResolverFunc - fetch the raw identity document bytes for a txid
//
// typically backed by transaction lookup on a node; returns an error
// if no document transaction exists
type ResolverFunc func(txId minerinfo.Digest) ([]byte, error)

// DefaultExpiry - how long a resolved key stays cached
const DefaultExpiry = 10 * time.Minute

// Cache - a Store wrapping a resolver with an expiring key cache
type Cache struct {
	resolve ResolverFunc
	cache   *cache.Cache
	log     *logger.L
}

// NewCache - create a caching store around a resolver
//
// a non-positive expiry selects DefaultExpiry
func NewCache(resolve ResolverFunc, expiry time.Duration) *Cache {
	if nil == resolve {
		fault.Panic("identity.NewCache: nil resolver")
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Cache{
		resolve: resolve,
		cache:   cache.New(expiry, 2*expiry),
		log:     logger.New("identity"),
	}
}

// PublicKey - the current miner id key for a reference txid
//
// resolution failures map to ErrNotPublicKeyResolved; document
// validation failures propagate unchanged
//
// the caller gets its own copy of the key bytes; mutating the result
// cannot corrupt later lookups
func (store *Cache) PublicKey(txId minerinfo.Digest) ([]byte, error) {

	key := txId.String()

	if cached, found := store.cache.Get(key); found {
		return copyBytes(cached.([]byte)), nil
	}

	data, err := store.resolve(txId)
	if nil != err {
		store.log.Warnf("resolve txid: %s  error: %s", txId, err)
		return nil, fault.ErrNotPublicKeyResolved
	}

	doc, err := minerdoc.ParseDocument(data)
	if nil != err {
		store.log.Warnf("parse document for txid: %s  error: %s", txId, err)
		return nil, err
	}

	publicKey, err := doc.MinerIdKey()
	if nil != err {
		return nil, err
	}

	store.cache.Set(key, publicKey, cache.DefaultExpiration)
	store.log.Debugf("cached key for txid: %s", txId)

	return copyBytes(publicKey), nil
}

func copyBytes(buffer []byte) []byte {
	result := make([]byte, len(buffer))
	copy(result, buffer)
	return result
}
