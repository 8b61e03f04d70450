// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast cross chain messages to remote relays
package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/txhash"
	"github.com/bitmark-inc/relayd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000

	// DefaultRate - messages per second
	DefaultRate = 100
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast      []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey     string   `gluamapper:"private_key" json:"private_key"`
	PublicKey      string   `gluamapper:"public_key" json:"public_key"`
	AllowedClients []string `gluamapper:"allowed_clients" json:"allowed_clients"`
	Rate           float64  `gluamapper:"rate" json:"rate"`
	Burst          int      `gluamapper:"burst" json:"burst"`
}

// Recorder - keeps the record of initial sends
type Recorder interface {
	PutSent(sourceTxID txhash.Hash, msg *crossmsg.Message) error
}

// New - bind the broadcast sockets
func New(configuration *Configuration, recorder Recorder) (*Broadcaster, error) {

	log := logger.New("publish")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	log.Info("initialising…")

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
	log.Debugf("public key: %x", publicKey)

	// remote relays are admitted by public key, or all if none are listed
	allowed := make([][]byte, 0, len(configuration.AllowedClients))
	for i, k := range configuration.AllowedClients {
		key, err := zmqutil.ReadPublicKey(k)
		if nil != err {
			log.Errorf("allowed_clients[%d]: %q  error: %s", i, k, err)
			return nil, err
		}
		allowed = append(allowed, key)
	}
	if err := zmqutil.AllowClients(broadcasterZapDomain, allowed); nil != err {
		log.Errorf("allow clients error: %s", err)
		return nil, err
	}
	log.Infof("allowed clients: %d", len(allowed))

	messagesPerSecond, burst := limits(configuration.Rate, configuration.Burst)
	b := newBroadcaster(log, recorder, rate.NewLimiter(rate.Limit(messagesPerSecond), burst))

	b.socket4, b.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}
	b.publish = b.publishSockets

	log.Infof("rate: %g/s  burst: %d", messagesPerSecond, burst)
	return b, nil
}

func newBroadcaster(log *logger.L, recorder Recorder, limiter *rate.Limiter) *Broadcaster {
	return &Broadcaster{
		log:      log,
		recorder: recorder,
		limiter:  limiter,
		queue:    make(chan [][]byte, queueSize),
	}
}

// SetRate - adjust the outbound limit of a running broadcaster
func (b *Broadcaster) SetRate(messagesPerSecond float64, burst int) {
	messagesPerSecond, burst = limits(messagesPerSecond, burst)
	b.limiter.SetLimit(rate.Limit(messagesPerSecond))
	b.limiter.SetBurst(burst)
	b.log.Infof("rate changed to: %g/s  burst: %d", messagesPerSecond, burst)
}

// zero or negative values select the defaults
func limits(messagesPerSecond float64, burst int) (float64, int) {
	if messagesPerSecond <= 0 {
		messagesPerSecond = DefaultRate
	}
	if burst <= 0 {
		burst = int(messagesPerSecond)
		if burst < 1 {
			burst = 1
		}
	}
	return messagesPerSecond, burst
}
