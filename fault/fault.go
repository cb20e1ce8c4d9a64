// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised             = ExistsError("already initialised")
	ErrCompromisedMinerIdMissing      = RecordError("compromised miner id is missing")
	ErrInvalidLoggerChannel           = InvalidError("invalid logger channel")
	ErrInvalidMerkleRootLength        = LengthError("modified merkle root length is invalid")
	ErrInvalidPreviousBlockHashLength = LengthError("previous block hash length is invalid")
	ErrInvalidPublicKey               = InvalidError("public key is invalid")
	ErrInvalidSignatureLength         = LengthError("signature length is invalid")
	ErrInvalidSignaturePolicy         = InvalidError("signature length policy is invalid")
	ErrInvalidTxIdLength              = LengthError("txid length is invalid")
	ErrKeyNotHex                      = InvalidError("key is not a hex encoded public key")
	ErrMinerContactNotObject          = RecordError("miner contact is not a json object")
	ErrMinerIdKeysMissing             = RecordError("miner id key set is missing")
	ErrNotDigest                      = RecordError("not a digest")
	ErrNotIdentityDocument            = RecordError("not a miner identity document")
	ErrNotMinerInfoScript             = RecordError("not a miner info script")
	ErrNotPublicKeyResolved           = NotFoundError("no public key resolved for txid")
	ErrRevocationKeysMissing          = RecordError("revocation key set is missing")
	ErrRevocationSignatureMissing     = RecordError("revocation message signature is missing")
	ErrScriptVersionUnsupported       = RecordError("script version is unsupported")
	ErrUnsupportedDocumentVersion     = RecordError("document version is unsupported")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
