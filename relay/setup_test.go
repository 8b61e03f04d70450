// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay_test

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/relay"
	"github.com/bitmark-inc/relayd/relay/mocks"
	"github.com/bitmark-inc/relayd/transaction"
	"github.com/bitmark-inc/relayd/txhash"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

var (
	localChain  = mustChain([]byte{1})
	remoteChain = mustChain([]byte{7})
	thirdChain  = mustChain([]byte{9})
)

func mustChain(b []byte) chain.ID {
	id, err := chain.IDFromBytes(b)
	if nil != err {
		panic(err)
	}
	return id
}

type sentMessage struct {
	msg  *crossmsg.Message
	mode relay.SendMode
}

// all collaborators of a relay under test
type fixture struct {
	ctl          *gomock.Controller
	committer    *mocks.MockCommitter
	identity     *mocks.MockChainIdentity
	sender       *mocks.MockSender
	messages     *mocks.MockMessageStore
	transactions *mocks.MockTransactionStore
	queue        *pending.Queue
	metrics      *relay.Metrics
	relay        *relay.Relay

	sync.Mutex
	sent []sentMessage
}

func newFixture(t *testing.T, ttl time.Duration) *fixture {
	ctl := gomock.NewController(t)

	queue, err := pending.New(pending.Configuration{
		TimeToLive:    ttl,
		SweepInterval: time.Hour,
		Capacity:      pending.DefaultCapacity,
	})
	if nil != err {
		t.Fatalf("queue error: %s", err)
	}

	metrics, err := relay.NewMetrics(prometheus.NewRegistry())
	if nil != err {
		t.Fatalf("metrics error: %s", err)
	}

	f := &fixture{
		ctl:          ctl,
		committer:    mocks.NewMockCommitter(ctl),
		identity:     mocks.NewMockChainIdentity(ctl),
		sender:       mocks.NewMockSender(ctl),
		messages:     mocks.NewMockMessageStore(ctl),
		transactions: mocks.NewMockTransactionStore(ctl),
		queue:        queue,
		metrics:      metrics,
	}

	f.identity.EXPECT().LocalChainID().Return(localChain).AnyTimes()
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(msg *crossmsg.Message, mode relay.SendMode) {
		f.Lock()
		f.sent = append(f.sent, sentMessage{msg: msg, mode: mode})
		f.Unlock()
	}).AnyTimes()

	r, err := relay.New(relay.Collaborators{
		Queue:        queue,
		Committer:    f.committer,
		Identity:     f.identity,
		Sender:       f.sender,
		Messages:     f.messages,
		Transactions: f.transactions,
	}, relay.Configuration{
		MaximumRetries: relay.DefaultMaximumRetries,
		Metrics:        metrics,
	})
	if nil != err {
		t.Fatalf("relay error: %s", err)
	}
	f.relay = r

	return f
}

func (f *fixture) finish() {
	f.ctl.Finish()
}

func (f *fixture) sentMessages() []sentMessage {
	f.Lock()
	defer f.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

// a local cross chain send to the remote chain
func localSend(t *testing.T, data string) (*transaction.Transaction, txhash.Hash) {
	tx, err := transaction.NewCross([]byte("owner"), remoteChain, []byte(data), 1000)
	if nil != err {
		t.Fatalf("create transaction error: %s", err)
	}
	id, err := tx.ID()
	if nil != err {
		t.Fatalf("transaction id error: %s", err)
	}
	return tx, id
}

// a transaction included locally on behalf of another chain
func foreign(t *testing.T, to chain.ID, data string) (*transaction.Transaction, txhash.Hash) {
	tx, err := transaction.NewCross([]byte("remote-owner"), to, []byte(data), 2000)
	if nil != err {
		t.Fatalf("create transaction error: %s", err)
	}
	tx.Source = false
	id, err := tx.ID()
	if nil != err {
		t.Fatalf("transaction id error: %s", err)
	}
	return tx, id
}
