// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// decode a miner info reference script and print it as JSON
//
// the script is given as hex, either a whole output script including
// the null-data preamble or, with --payload, the bare field payload
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/minerid/configuration"
	"github.com/bitmark-inc/minerid/minerinfo"
)

// decoded output layout
type decodeResult struct {
	Reference *minerinfo.MinerInfoRef `json:"reference"`
	Verified  *bool                   `json:"verified,omitempty"`
}

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "payload", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "public-key", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--payload] [--config=FILE] [--public-key=HEX] [hex-script]", program)
	}

	policy := minerinfo.DefaultSignatureLengthPolicy
	if len(options["config"]) > 0 {
		config, err := configuration.GetConfiguration(options["config"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
		policy = config.SignaturePolicy()
	}

	// script from argument or stdin
	var text string
	if len(arguments) > 0 {
		text = arguments[0]
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			text = scanner.Text()
		}
		if err := scanner.Err(); nil != err {
			exitwithstatus.Message("%s: read error: %s", program, err)
		}
	}

	script, err := hex.DecodeString(strings.TrimSpace(text))
	if nil != err {
		exitwithstatus.Message("%s: hex decode error: %s", program, err)
	}

	payload := script
	if 0 == len(options["payload"]) {
		payload, err = minerinfo.PayloadFromScript(script)
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
	}

	reference, err := minerinfo.ParseMinerInfoRefWithPolicy(payload, policy)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	result := decodeResult{Reference: reference}

	if len(options["public-key"]) > 0 {
		publicKey, err := hex.DecodeString(options["public-key"][0])
		if nil != err {
			exitwithstatus.Message("%s: public key hex error: %s", program, err)
		}
		verified := minerinfo.Verify(&reference.BlockBind, publicKey)
		result.Verified = &verified
	}

	buffer, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: JSON encode error: %s", program, err)
	}
	fmt.Printf("%s\n", buffer)
}
