// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/minerid/configuration"
	"github.com/bitmark-inc/minerid/fault"
)

func writeConfigFile(t *testing.T, content string) (string, func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("create temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "minerid.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfigFile(t, `
local M = {}
M.signature_minimum_length = 8
M.signature_maximum_length = 72
M.cache_expiry_minutes = 5
return M
`)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "read configuration")
	assert.Equal(t, 8, config.SignatureMinimumLength, "minimum length")
	assert.Equal(t, 72, config.SignatureMaximumLength, "maximum length")
	assert.Equal(t, 8, config.SignaturePolicy().Minimum, "policy minimum")
	assert.Equal(t, 5*time.Minute, config.CacheExpiry(), "cache expiry")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfigFile(t, `
local M = {}
return M
`)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "read configuration")
	assert.Equal(t, 69, config.SignatureMinimumLength, "default minimum")
	assert.Equal(t, 73, config.SignatureMaximumLength, "default maximum")
	assert.Equal(t, 10*time.Minute, config.CacheExpiry(), "default expiry")
}

func TestGetConfigurationInvalidPolicy(t *testing.T) {
	fileName, cleanup := writeConfigFile(t, `
local M = {}
M.signature_minimum_length = 80
M.signature_maximum_length = 70
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidSignaturePolicy, err, "inverted range rejected")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("no-such-file.conf")
	assert.Error(t, err, "missing file")
}
