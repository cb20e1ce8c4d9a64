// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"time"

	"github.com/bitmark-inc/minerid/fault"
	"github.com/bitmark-inc/minerid/minerinfo"
)

// Configuration - operator settings for reference decoding
type Configuration struct {
	SignatureMinimumLength int `gluamapper:"signature_minimum_length" json:"signature_minimum_length"`
	SignatureMaximumLength int `gluamapper:"signature_maximum_length" json:"signature_maximum_length"`
	CacheExpiryMinutes     int `gluamapper:"cache_expiry_minutes" json:"cache_expiry_minutes"`
}

// GetConfiguration - read a Lua configuration file over the defaults
func GetConfiguration(fileName string) (*Configuration, error) {

	config := &Configuration{
		SignatureMinimumLength: minerinfo.SignatureMinimumLength,
		SignatureMaximumLength: minerinfo.SignatureMaximumLength,
		CacheExpiryMinutes:     10,
	}

	if err := ParseConfigurationFile(fileName, config); nil != err {
		return nil, err
	}

	if !config.SignaturePolicy().IsValid() {
		return nil, fault.ErrInvalidSignaturePolicy
	}

	return config, nil
}

// SignaturePolicy - the configured signature length range
func (config *Configuration) SignaturePolicy() minerinfo.SignatureLengthPolicy {
	return minerinfo.SignatureLengthPolicy{
		Minimum: config.SignatureMinimumLength,
		Maximum: config.SignatureMaximumLength,
	}
}

// CacheExpiry - the configured key cache lifetime
func (config *Configuration) CacheExpiry() time.Duration {
	return time.Duration(config.CacheExpiryMinutes) * time.Minute
}
