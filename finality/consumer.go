// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package finality

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/messagebus"
)

// CommitCommand - message bus command carrying a final height
const CommitCommand = "commit"

// PackHeight - encode a height as a message parameter
func PackHeight(height uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, height)
	return buffer
}

// UnpackHeight - decode a height message parameter
func UnpackHeight(buffer []byte) (uint64, error) {
	if 8 != len(buffer) {
		return 0, fault.ErrWrongHeightLength
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// Consumer - background process passing queued heights to a notifier
type Consumer struct {
	log      *logger.L
	queue    *messagebus.QueueType
	notifier *Notifier
}

// NewConsumer - consumer of a finality queue
func NewConsumer(queue *messagebus.QueueType, notifier *Notifier) *Consumer {
	return &Consumer{
		log:      logger.New("finality"),
		queue:    queue,
		notifier: notifier,
	}
}

// Run - process heights until shutdown
func (c *Consumer) Run(args interface{}, shutdown <-chan struct{}) {

	log := c.log
	log.Info("starting…")

	queue := c.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			if CommitCommand != item.Command || 1 != len(item.Parameters) {
				log.Warnf("ignored command: %q  parameters: %d", item.Command, len(item.Parameters))
				continue loop
			}
			height, err := UnpackHeight(item.Parameters[0])
			if nil != err {
				log.Errorf("commit height error: %s", err)
				continue loop
			}
			c.notifier.Notify(height)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
