// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/txhash"
)

const testingDirName = "testing"

func setupTestLogger() {
	removeFiles()
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
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func hashOf(s string) txhash.Hash {
	return txhash.New([]byte(s))
}

type evictions struct {
	sync.Mutex
	heights []uint64
	hashes  []txhash.Hash
}

func (e *evictions) record(purpose pending.Purpose, height uint64, hashes []txhash.Hash) {
	e.Lock()
	e.heights = append(e.heights, height)
	e.hashes = append(e.hashes, hashes...)
	e.Unlock()
}

func newQueue(t *testing.T, ttl time.Duration, e *evictions) *pending.Queue {
	configuration := pending.Configuration{
		TimeToLive:    ttl,
		SweepInterval: time.Hour,
		Capacity:      pending.DefaultCapacity,
	}
	q, err := pending.New(configuration)
	if nil != err {
		t.Fatalf("new queue error: %s", err)
	}
	if nil != e {
		q.OnEvict(e.record)
	}
	return q
}

func TestNewInvalid(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := pending.New(pending.Configuration{SweepInterval: time.Second, Capacity: 1})
	assert.Equal(t, fault.ErrZeroTimeToLive, err, "zero ttl")

	_, err = pending.New(pending.Configuration{TimeToLive: time.Second, Capacity: 1})
	assert.Equal(t, fault.ErrZeroSweepInterval, err, "zero sweep")

	_, err = pending.New(pending.Configuration{TimeToLive: time.Second, SweepInterval: time.Second})
	assert.Equal(t, fault.ErrZeroCapacity, err, "zero capacity")
}

func TestEnqueueDrain(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := newQueue(t, time.Hour, nil)

	a := hashOf("a")
	b := hashOf("b")

	assert.True(t, q.Enqueue(pending.Outbound, 100, a), "first enqueue")
	assert.True(t, q.Enqueue(pending.Outbound, 100, b), "second enqueue")
	assert.False(t, q.Enqueue(pending.Outbound, 100, a), "duplicate enqueue")

	assert.Equal(t, 1, q.Len(pending.Outbound), "outbound heights")
	assert.Equal(t, 0, q.Len(pending.Inbound), "inbound heights")
	assert.Equal(t, []txhash.Hash{a, b}, q.Pending(pending.Outbound, 100), "pending")

	// purposes are independent
	assert.Empty(t, q.Drain(pending.Inbound, 100), "inbound drain")

	assert.Equal(t, []txhash.Hash{a, b}, q.Drain(pending.Outbound, 100), "outbound drain")

	drained := q.Drain(pending.Outbound, 100)
	assert.NotNil(t, drained, "second drain is nil")
	assert.Empty(t, drained, "second drain")
	assert.Equal(t, 0, q.Len(pending.Outbound), "heights after drain")

	// after a drain the same hash starts a fresh entry
	assert.True(t, q.Enqueue(pending.Outbound, 100, a), "enqueue after drain")
	assert.Equal(t, []txhash.Hash{a}, q.Drain(pending.Outbound, 100), "drain of fresh entry")
}

func TestExpiry(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	e := &evictions{}
	q := newQueue(t, 50*time.Millisecond, e)

	h := hashOf("expires")
	assert.True(t, q.Enqueue(pending.Inbound, 7, h), "enqueue")

	time.Sleep(100 * time.Millisecond)
	q.Sweep()

	e.Lock()
	assert.Equal(t, []uint64{7}, e.heights, "evicted heights")
	assert.Equal(t, []txhash.Hash{h}, e.hashes, "evicted hashes")
	e.Unlock()

	assert.Empty(t, q.Drain(pending.Inbound, 7), "drain after expiry")

	// an expired height not yet swept is still reported
	q.Enqueue(pending.Inbound, 9, h)
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, q.Drain(pending.Inbound, 9), "drain of expired height")

	e.Lock()
	assert.Equal(t, []uint64{7, 9}, e.heights, "unswept expiry not reported")
	e.Unlock()

	// a drain is not an eviction
	q.Enqueue(pending.Inbound, 8, h)
	q.Drain(pending.Inbound, 8)
	q.Sweep()

	e.Lock()
	assert.Equal(t, 2, len(e.heights), "drain reported as eviction")
	e.Unlock()
}

func TestExpiryRefreshedByEnqueue(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	e := &evictions{}
	q := newQueue(t, 200*time.Millisecond, e)

	q.Enqueue(pending.Outbound, 1, hashOf("one"))
	time.Sleep(120 * time.Millisecond)
	q.Enqueue(pending.Outbound, 1, hashOf("two"))
	time.Sleep(120 * time.Millisecond)
	q.Sweep()

	assert.Equal(t, 2, len(q.Drain(pending.Outbound, 1)), "entry expired despite enqueue")

	e.Lock()
	assert.Empty(t, e.heights, "unexpected eviction")
	e.Unlock()
}

func TestConcurrentEnqueue(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := newQueue(t, time.Hour, nil)

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	drained := make(map[txhash.Hash]int)

	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i += 1 {
				q.Enqueue(pending.Inbound, 5, txhash.New([]byte{byte(w), byte(i)}))
				if 0 == i%10 {
					hashes := q.Drain(pending.Inbound, 5)
					mu.Lock()
					for _, h := range hashes {
						drained[h] += 1
					}
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	for _, h := range q.Drain(pending.Inbound, 5) {
		drained[h] += 1
	}

	assert.Equal(t, workers*perWorker, len(drained), "hashes lost")
	for h, n := range drained {
		assert.Equal(t, 1, n, "hash: %s drained more than once", h)
	}
}
