// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"bytes"
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/fault"
)

func TestAllowClients(t *testing.T) {
	const domain = "test-domain"

	err := AllowClients(domain, nil)
	assert.Equal(t, fault.ErrAuthenticationNotStarted, err, "before start")

	if err := StartAuthentication(); nil != err {
		t.Fatalf("start authentication error: %s", err)
	}
	defer StopAuthentication()

	assert.Nil(t, StartAuthentication(), "second start")

	assert.Nil(t, AllowClients(domain, nil), "allow any")
	assert.Equal(t, []string{zmq.CURVE_ALLOW_ANY}, AllowedClients(domain), "any client")

	key1 := bytes.Repeat([]byte{0x11}, publicLength)
	key2 := bytes.Repeat([]byte{0x22}, publicLength)
	assert.Nil(t, AllowClients(domain, [][]byte{key1, key2}), "allow keys")
	assert.Equal(t, []string{zmq.Z85encode(string(key1)), zmq.Z85encode(string(key2))}, AllowedClients(domain), "listed clients")

	err = AllowClients(domain, [][]byte{key1[:5]})
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short key")
	assert.Equal(t, 2, len(AllowedClients(domain)), "list unchanged after error")

	assert.Empty(t, AllowedClients("other-domain"), "unknown domain")
}
