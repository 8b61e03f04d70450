// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/fault"
)

const (
	defaultAddress = "127.0.0.1:9876"
	defaultTimeout = 0
)

func setupTestClient() *Client {
	publicKey := make([]byte, publicKeySize)
	privateKey := make([]byte, privateKeySize)
	_, _ = rand.Read(publicKey)
	_, _ = rand.Read(privateKey)
	client, _ := NewClient(zmq.SUB, privateKey, publicKey, defaultTimeout)
	return client
}

func teardownTestClient(c *Client) {
	_ = c.Close()
}

func TestNewClientKeySizes(t *testing.T) {
	_, err := NewClient(zmq.SUB, make([]byte, privateKeySize), make([]byte, 5), defaultTimeout)
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short public key")

	_, err = NewClient(zmq.SUB, make([]byte, 5), make([]byte, publicKeySize), defaultTimeout)
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "short private key")
}

func TestConnect(t *testing.T) {
	client := setupTestClient()
	defer teardownTestClient(client)

	_, err := client.Receive(0)
	assert.Equal(t, fault.ErrNotConnected, err, "receive before connect")

	serverKey := make([]byte, publicKeySize)
	_, _ = rand.Read(serverKey)

	err = client.Connect("not an address", serverKey)
	assert.NotNil(t, err, "bad address accepted")
	assert.False(t, client.IsConnected(), "connected to bad address")

	err = client.Connect(defaultAddress, serverKey[:10])
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short server key")

	err = client.Connect(defaultAddress, serverKey)
	assert.Nil(t, err, "connect error")
	assert.True(t, client.IsConnected(), "not connected")
	assert.Equal(t, client.socket, client.Socket(), "socket")
	assert.Equal(t, "tcp://"+defaultAddress, client.String(), "address")
}
