// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package finality_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/background"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/finality"
	"github.com/bitmark-inc/relayd/messagebus"
)

const testingDirName = "testing"

func setupTestLogger() {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

type recorder struct {
	sync.Mutex
	name    string
	order   *[]string
	heights []uint64
}

func (r *recorder) BlockCommitted(height uint64) {
	r.Lock()
	r.heights = append(r.heights, height)
	*r.order = append(*r.order, r.name)
	r.Unlock()
}

func (r *recorder) seen() []uint64 {
	r.Lock()
	defer r.Unlock()
	return append([]uint64(nil), r.heights...)
}

func TestNotifyOrder(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	order := []string{}
	first := &recorder{name: "first", order: &order}
	second := &recorder{name: "second", order: &order}

	n := finality.NewNotifier()
	n.Register(first)
	n.Register(second)

	n.Notify(100)

	assert.Equal(t, []uint64{100}, first.seen(), "first listener")
	assert.Equal(t, []uint64{100}, second.seen(), "second listener")
	assert.Equal(t, []string{"first", "second"}, order, "delivery order")
}

func TestHeightEncoding(t *testing.T) {
	height, err := finality.UnpackHeight(finality.PackHeight(123456789))
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, uint64(123456789), height, "wrong height")

	_, err = finality.UnpackHeight([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrWrongHeightLength, err, "short height")
}

func TestConsumer(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	order := []string{}
	r := &recorder{name: "r", order: &order}
	n := finality.NewNotifier()
	n.Register(r)

	queue := messagebus.New(10)
	processes := background.Processes{
		finality.NewConsumer(queue, n),
	}
	b := background.Start(processes, nil)

	queue.Send(finality.CommitCommand, finality.PackHeight(5))
	queue.Send("junk")
	queue.Send(finality.CommitCommand, []byte{1})
	queue.Send(finality.CommitCommand, finality.PackHeight(6))

	deadline := time.Now().Add(time.Second)
	for len(r.seen()) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	b.Stop()

	assert.Equal(t, []uint64{5, 6}, r.seen(), "heights delivered")
}
