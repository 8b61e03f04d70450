// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/configuration"
	"github.com/bitmark-inc/relayd/fault"
)

type relayType struct {
	TimeToLive     string `gluamapper:"ttl"`
	MaximumRetries int    `gluamapper:"maximum_retries"`
}

type connectType struct {
	Address   string `gluamapper:"address"`
	PublicKey string `gluamapper:"public_key"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	ChainID       string            `gluamapper:"chain_id"`
	Relay         relayType         `gluamapper:"relay"`
	Connect       []connectType     `gluamapper:"connect"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testScript = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.chain_id = chain

M.relay = {
    ttl = "30m",
    maximum_retries = 5,
}

M.connect = {
    {
        address = "127.0.0.1:2135",
        public_key = "abcdef",
    },
}

M.levels = {
    DEFAULT = "info",
    relay = "debug",
}

return M
`

func writeScript(t *testing.T, script string) (string, func()) {
	directory, err := ioutil.TempDir("", "relayd-configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(directory, "relayd.conf")
	if err := ioutil.WriteFile(fileName, []byte(script), 0600); nil != err {
		os.RemoveAll(directory)
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() { os.RemoveAll(directory) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	options := &testConfiguration{
		Relay: relayType{
			TimeToLive:     "1h",
			MaximumRetries: 3,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, options, map[string]string{
		"chain": "01ff",
	})
	if !assert.Nil(t, err, "parse error") {
		return
	}

	assert.Equal(t, filepath.Dir(fileName)+"/", options.DataDirectory, "data directory")
	assert.Equal(t, "01ff", options.ChainID, "chain from variables")
	assert.Equal(t, "30m", options.Relay.TimeToLive, "ttl")
	assert.Equal(t, 5, options.Relay.MaximumRetries, "retries")
	if assert.Equal(t, 1, len(options.Connect), "connections") {
		assert.Equal(t, "127.0.0.1:2135", options.Connect[0].Address, "address")
		assert.Equal(t, "abcdef", options.Connect[0].PublicKey, "public key")
	}
	assert.Equal(t, "debug", options.Levels["relay"], "level")
}

func TestParseConfigurationDefaultsKept(t *testing.T) {
	fileName, cleanup := writeScript(t, `return { chain_id = "07" }`)
	defer cleanup()

	options := &testConfiguration{
		Relay: relayType{
			TimeToLive:     "1h",
			MaximumRetries: 3,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, options, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "07", options.ChainID, "chain")
	assert.Equal(t, "1h", options.Relay.TimeToLive, "default ttl")
	assert.Equal(t, 3, options.Relay.MaximumRetries, "default retries")
}

func TestParseConfigurationErrors(t *testing.T) {
	options := &testConfiguration{}

	err := configuration.ParseConfigurationFile("/nonexistent/relayd.conf", options, nil)
	assert.NotNil(t, err, "missing file")

	fileName, cleanup := writeScript(t, `return "not a table"`)
	defer cleanup()
	err = configuration.ParseConfigurationFile(fileName, options, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "not a table")

	syntax, cleanupSyntax := writeScript(t, `return {`)
	defer cleanupSyntax()
	err = configuration.ParseConfigurationFile(syntax, options, nil)
	assert.NotNil(t, err, "syntax error")
}
