// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subscribe - receive the local node feed and remote relay broadcasts
//
// frames handled:
//
//   tx     height  packed-transaction   a transaction in a new local block
//   commit height                       a local block is final
//   cross  mode    packed-message       a message from a remote relay
package subscribe

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/messagebus"
	"github.com/bitmark-inc/relayd/transaction"
	"github.com/bitmark-inc/relayd/txhash"
	"github.com/bitmark-inc/relayd/zmqutil"
)

const (
	subscriberSignal = "inproc://relayd-subscriber-signal"
	receiveTimeout   = time.Duration(0) // blocking
)

// Connection - one server to subscribe to
type Connection struct {
	Address   string `gluamapper:"address" json:"address"`
	PublicKey string `gluamapper:"public_key" json:"public_key"`
}

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	PrivateKey string       `gluamapper:"private_key" json:"private_key"`
	PublicKey  string       `gluamapper:"public_key" json:"public_key"`
	Connect    []Connection `gluamapper:"connect" json:"connect"`
}

// TransactionRecorder - keeps local transactions with their heights
type TransactionRecorder interface {
	Put(height uint64, tx *transaction.Transaction) (txhash.Hash, error)
}

// Registrar - admits transactions for relaying
type Registrar interface {
	Register(height uint64, tx *transaction.Transaction) bool
}

// MessageRecorder - keeps messages received from remote relays
type MessageRecorder interface {
	PutReceived(hash txhash.Hash, msg *crossmsg.Message) error
}

// Handlers - destinations for received frames
type Handlers struct {
	Transactions TransactionRecorder
	Registrar    Registrar
	Messages     MessageRecorder
	Finality     *messagebus.QueueType
}

// Subscriber - background process reading all subscriptions
type Subscriber struct {
	log      *logger.L
	handlers Handlers
	push     *zmq.Socket
	pull     *zmq.Socket
	clients  []*zmqutil.Client
}

// New - connect to every configured server
func New(configuration *Configuration, handlers Handlers) (*Subscriber, error) {

	log := logger.New("subscribe")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	log.Info("initialising…")

	if nil == handlers.Transactions || nil == handlers.Registrar ||
		nil == handlers.Messages || nil == handlers.Finality {
		return nil, fault.ErrInvalidConfiguration
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, err
	}

	s := newSubscriber(log, handlers)

	fail := func(err error) (*Subscriber, error) {
		for _, client := range s.clients {
			client.Close()
		}
		return nil, err
	}

	for i, c := range configuration.Connect {
		serverPublicKey, err := zmqutil.ReadPublicKey(c.PublicKey)
		if nil != err {
			log.Errorf("client[%d]=public: %q  error: %s", i, c.PublicKey, err)
			return fail(err)
		}

		client, err := zmqutil.NewClient(zmq.SUB, privateKey, publicKey, receiveTimeout)
		if nil != err {
			log.Errorf("client[%d]=%q  error: %s", i, c.Address, err)
			return fail(err)
		}
		s.clients = append(s.clients, client)

		if err := client.Connect(c.Address, serverPublicKey); nil != err {
			log.Errorf("connect[%d]=%q  error: %s", i, c.Address, err)
			return fail(err)
		}
		log.Infof("public key: %x  at: %q", serverPublicKey, c.Address)
	}

	s.push, s.pull, err = zmqutil.NewSignalPair(subscriberSignal)
	if nil != err {
		return fail(err)
	}

	return s, nil
}

func newSubscriber(log *logger.L, handlers Handlers) *Subscriber {
	return &Subscriber{
		log:      log,
		handlers: handlers,
	}
}
