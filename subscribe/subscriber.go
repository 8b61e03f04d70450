// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subscribe

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/finality"
	"github.com/bitmark-inc/relayd/publish"
	"github.com/bitmark-inc/relayd/transaction"
)

// Run - receive until shutdown
func (s *Subscriber) Run(args interface{}, shutdown <-chan struct{}) {

	log := s.log
	log.Info("starting…")

	done := make(chan struct{})

	go func() {
		poller := zmq.NewPoller()
		for _, client := range s.clients {
			if socket := client.Socket(); nil != socket {
				poller.Add(socket, zmq.POLLIN)
			}
		}
		poller.Add(s.pull, zmq.POLLIN)

	loop:
		for {
			sockets, err := poller.Poll(-1)
			if nil != err {
				log.Errorf("poll error: %s", err)
				continue loop
			}
			for _, socket := range sockets {
				switch sk := socket.Socket; sk {
				case s.pull:
					sk.Recv(0)
					break loop
				default:
					data, err := sk.RecvMessageBytes(0)
					if nil != err {
						log.Errorf("receive error: %s", err)
						continue
					}
					if err := s.process(data); nil != err {
						log.Errorf("process: %q  error: %s", data[0], err)
					}
				}
			}
		}
		s.pull.Close()
		for _, client := range s.clients {
			client.Close()
		}
		close(done)
	}()

	// wait for shutdown
	<-shutdown
	s.push.SendMessage("stop")
	<-done
	s.push.Close()

	log.Info("shutting down…")
	log.Flush()
}

// process the received subscription
func (s *Subscriber) process(data [][]byte) error {

	if 0 == len(data) {
		return fault.ErrUnexpectedFrameCount
	}

	log := s.log

	switch string(data[0]) {

	case "tx":
		if 3 != len(data) {
			return fault.ErrUnexpectedFrameCount
		}
		height, err := finality.UnpackHeight(data[1])
		if nil != err {
			return err
		}
		tx, err := transaction.Unpack(data[2])
		if nil != err {
			return err
		}
		hash, err := s.handlers.Transactions.Put(height, tx)
		if nil != err {
			return err
		}
		accepted := s.handlers.Registrar.Register(height, tx)
		log.Debugf("tx: %s  height: %d  relay: %v", hash, height, accepted)

	case finality.CommitCommand:
		if 2 != len(data) {
			return fault.ErrUnexpectedFrameCount
		}
		height, err := finality.UnpackHeight(data[1])
		if nil != err {
			return err
		}
		log.Debugf("commit height: %d", height)
		s.handlers.Finality.Send(finality.CommitCommand, data[1])

	case publish.CrossCommand:
		if 3 != len(data) {
			return fault.ErrUnexpectedFrameCount
		}
		msg, err := crossmsg.Unpack(data[2])
		if nil != err {
			return err
		}
		hash, err := msg.Transaction.ID()
		if nil != err {
			return err
		}
		if err := s.handlers.Messages.PutReceived(hash, msg); nil != err {
			return err
		}
		log.Infof("received: %s  mode: %s  tx: %s  from: %s  to: %s", msg.Type, data[1], hash, msg.FromChainID, msg.ToChainID)

	default:
		log.Warnf("received unhandled: %q", data[0])
	}
	return nil
}
