// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "relayd.public")
	privateFile := filepath.Join(dir, "relayd.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "make error")

	public, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public error")
	assert.Equal(t, 32, len(public), "public length")

	private, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private error")
	assert.Equal(t, 32, len(private), "private length")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "private read as public")

	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public read as private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.ErrKeyFileAlreadyExists, err, "overwrite")
}

func TestParseKey(t *testing.T) {
	hexKey := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hexKey + "\n")
	assert.Nil(t, err, "public error")
	assert.False(t, private, "public is private")
	assert.Equal(t, byte(0xab), key[0], "public value")

	_, private, err = zmqutil.ParseKey("  PRIVATE:" + hexKey)
	assert.Nil(t, err, "private error")
	assert.True(t, private, "private is public")

	// bare hex is read as public
	key, err = zmqutil.ReadPublicKey(hexKey)
	assert.Nil(t, err, "bare public error")
	assert.Equal(t, 32, len(key), "bare public length")

	_, _, err = zmqutil.ParseKey("PUBLIC:abcd")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "short public")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz")
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "bad hex")

	_, _, err = zmqutil.ParseKey(hexKey)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "untagged")
}
