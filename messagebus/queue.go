// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its raw parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// QueueType - a buffered single consumer queue
type QueueType struct {
	c chan Message
}

// BusType - all available queues
type BusType struct {
	Finality *QueueType // heights reported final by the node
}

// Bus - the process wide queues
var Bus = BusType{
	Finality: New(queueSize),
}

// New - a queue outside the bus
func New(size int) *QueueType {
	return &QueueType{
		c: make(chan Message, size),
	}
}

// Send - queue a message, blocks while the queue is full
func (queue *QueueType) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *QueueType) Chan() <-chan Message {
	return queue.c
}

// Len - number of queued messages
func (queue *QueueType) Len() int {
	return len(queue.c)
}
