// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"context"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/relay"
)

// CrossCommand - first frame of every published message
const CrossCommand = "cross"

// Broadcaster - queues messages and publishes them at a limited rate
type Broadcaster struct {
	log      *logger.L
	recorder Recorder
	limiter  *rate.Limiter
	queue    chan [][]byte
	socket4  *zmq.Socket
	socket6  *zmq.Socket
	publish  func(frames [][]byte) error
}

// Send - queue a message for publishing
//
// an initial send is first recorded so its acknowledgement can be
// matched; failures are logged and the message is not published
func (b *Broadcaster) Send(msg *crossmsg.Message, mode relay.SendMode) {
	packed, err := msg.Pack()
	if nil != err {
		b.log.Errorf("pack: %s  error: %s", msg.Type, err)
		return
	}

	if relay.Initial == mode {
		sourceTxID, err := msg.Transaction.ID()
		if nil != err {
			b.log.Errorf("transaction id error: %s", err)
			return
		}
		if err := b.recorder.PutSent(sourceTxID, msg); nil != err {
			b.log.Errorf("record sent: %s  error: %s", sourceTxID, err)
			return
		}
	}

	frames := [][]byte{
		[]byte(CrossCommand),
		[]byte(mode.String()),
		packed,
	}

	select {
	case b.queue <- frames:
		b.log.Debugf("queued: %s  mode: %s  from: %s  to: %s", msg.Type, mode, msg.FromChainID, msg.ToChainID)
	default:
		b.log.Errorf("drop: %s  mode: %s  to: %s  error: %s", msg.Type, mode, msg.ToChainID, fault.ErrSendRateExceeded)
	}
}

// Run - publish queued messages until shutdown
func (b *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := b.log
	log.Info("starting…")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-shutdown
		cancel()
	}()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case frames := <-b.queue:
			if err := b.limiter.Wait(ctx); nil != err {
				break loop
			}
			if err := b.publish(frames); nil != err {
				log.Errorf("publish error: %s", err)
			}
		}
	}

	cancel()

	if nil != b.socket4 {
		b.socket4.Close()
	}
	if nil != b.socket6 {
		b.socket6.Close()
	}

	log.Info("shutting down…")
	log.Flush()
}

func (b *Broadcaster) publishSockets(frames [][]byte) error {
	for _, socket := range []*zmq.Socket{b.socket4, b.socket6} {
		if nil == socket {
			continue
		}
		if err := sendFrames(socket, frames); nil != err {
			return err
		}
	}
	return nil
}

func sendFrames(socket *zmq.Socket, frames [][]byte) error {
	last := len(frames) - 1
	for i, frame := range frames {
		flag := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flag = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(frame, flag); nil != err {
			return err
		}
	}
	return nil
}
