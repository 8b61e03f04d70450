// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/relayd/fault"
)

// Client - a curve secured connection to one server
type Client struct {
	publicKey       []byte
	privateKey      []byte
	serverPublicKey []byte
	address         string
	v6              bool
	socketType      zmq.Type
	socket          *zmq.Socket
	timeout         time.Duration
}

const (
	publicKeySize  = 32
	privateKeySize = 32
	identifierSize = 32
)

// NewClient - create a client, usually of type zmq.SUB
func NewClient(socketType zmq.Type, privateKey []byte, publicKey []byte, timeout time.Duration) (*Client, error) {

	if len(publicKey) != publicKeySize {
		return nil, fault.ErrInvalidPublicKey
	}
	if len(privateKey) != privateKeySize {
		return nil, fault.ErrInvalidPrivateKey
	}

	client := &Client{
		publicKey:       make([]byte, publicKeySize),
		privateKey:      make([]byte, privateKeySize),
		serverPublicKey: make([]byte, publicKeySize),
		socketType:      socketType,
		timeout:         timeout,
	}
	copy(client.privateKey, privateKey)
	copy(client.publicKey, publicKey)
	return client, nil
}

// create a socket and connect to specific server with specifed key
func (client *Client) openSocket() error {

	socket, err := zmq.NewSocket(client.socketType)
	if nil != err {
		return err
	}

	// create a secure random identifier
	randomIDBytes := make([]byte, identifierSize)
	_, err = rand.Read(randomIDBytes)
	if nil != err {
		socket.Close()
		return err
	}

	fail := func(err error) error {
		socket.Close()
		return err
	}

	// set up as client
	if err := socket.SetCurveServer(0); nil != err {
		return fail(err)
	}
	if err := socket.SetCurvePublickey(string(client.publicKey)); nil != err {
		return fail(err)
	}
	if err := socket.SetCurveSecretkey(string(client.privateKey)); nil != err {
		return fail(err)
	}

	// local identitity is a random value
	if err := socket.SetIdentity(string(randomIDBytes)); nil != err {
		return fail(err)
	}

	// destination identity is its public key
	if err := socket.SetCurveServerkey(string(client.serverPublicKey)); nil != err {
		return fail(err)
	}

	// zero => do not set timeout
	if 0 != client.timeout {
		if err := socket.SetSndtimeo(client.timeout); nil != err {
			return fail(err)
		}
		if err := socket.SetRcvtimeo(client.timeout); nil != err {
			return fail(err)
		}
	}
	if err := socket.SetLinger(0); nil != err {
		return fail(err)
	}

	if zmq.SUB == client.socketType {
		// set subscription prefix - empty => receive everything
		if err := socket.SetSubscribe(""); nil != err {
			return fail(err)
		}
	}

	// heartbeat needs zmq 4.2
	if err := socket.SetHeartbeatIvl(heartbeatInterval); nil != err && zmq.ErrorNotImplemented42 != err {
		return fail(err)
	}
	if err := socket.SetHeartbeatTimeout(heartbeatTimeout); nil != err && zmq.ErrorNotImplemented42 != err {
		return fail(err)
	}
	if err := socket.SetHeartbeatTtl(heartbeatTTL); nil != err && zmq.ErrorNotImplemented42 != err {
		return fail(err)
	}

	// set IPv6 state before connect
	if err := socket.SetIpv6(client.v6); nil != err {
		return fail(err)
	}

	if err := socket.Connect(client.address); nil != err {
		return fail(err)
	}

	client.socket = socket
	return nil
}

// destroy the socket, but leave other connection info so can reconnect
// to the same endpoint again
func (client *Client) closeSocket() error {

	if nil == client.socket {
		return nil
	}

	if "" != client.address {
		client.socket.Disconnect(client.address)
	}

	err := client.socket.Close()
	client.socket = nil
	return err
}

// Connect - disconnect old address and connect to new
func (client *Client) Connect(hostPort string, serverPublicKey []byte) error {

	if len(serverPublicKey) != publicKeySize {
		return fault.ErrInvalidPublicKey
	}

	address, v6, err := CanonicalAddress(hostPort)
	if nil != err {
		return err
	}

	if err := client.closeSocket(); nil != err {
		return err
	}

	copy(client.serverPublicKey, serverPublicKey)
	client.address = address
	client.v6 = v6

	if err := client.openSocket(); nil != err {
		client.address = ""
		return err
	}
	return nil
}

// IsConnected - check if connected to a server
func (client *Client) IsConnected() bool {
	return nil != client.socket
}

// Socket - the underlying socket for polling, nil if not connected
func (client *Client) Socket() *zmq.Socket {
	return client.socket
}

// Receive - read one multipart message
func (client *Client) Receive(flags zmq.Flag) ([][]byte, error) {
	if nil == client.socket {
		return nil, fault.ErrNotConnected
	}
	return client.socket.RecvMessageBytes(flags)
}

// Close - disconnect and close
func (client *Client) Close() error {
	return client.closeSocket()
}

// String - the connected address
func (client *Client) String() string {
	return client.address
}
