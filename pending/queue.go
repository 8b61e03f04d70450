// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/txhash"
)

// Purpose - selects one of the independent tables
type Purpose int

// the purposes
const (
	Inbound  Purpose = iota // messages received for the local chain
	Outbound                // local transactions to be sent out
)

var purposes = []Purpose{Inbound, Outbound}

// String - name for logging
func (p Purpose) String() string {
	switch p {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	default:
		return "unknown"
	}
}

// defaults
const (
	DefaultTimeToLive    = 60 * time.Minute
	DefaultSweepInterval = 1 * time.Minute
	DefaultCapacity      = 100
)

// EvictFunc - called with the hashes of an expired height
type EvictFunc func(purpose Purpose, height uint64, hashes []txhash.Hash)

// Configuration - queue parameters
type Configuration struct {
	TimeToLive    time.Duration
	SweepInterval time.Duration
	Capacity      int
}

// Queue - the pending tables for all purposes
type Queue struct {
	sync.RWMutex
	log     *logger.L
	tables  map[Purpose]*table
	onEvict EvictFunc
}

type table struct {
	sync.Mutex
	items *cache.Cache
}

// hashes waiting at one height
type entry struct {
	sync.Mutex
	hashes  []txhash.Hash
	present map[txhash.Hash]struct{}
	drained bool
	evicted bool
}

// New - create an empty queue
func New(configuration Configuration) (*Queue, error) {

	if configuration.TimeToLive <= 0 {
		return nil, fault.ErrZeroTimeToLive
	}
	if configuration.SweepInterval <= 0 {
		return nil, fault.ErrZeroSweepInterval
	}
	if configuration.Capacity <= 0 {
		return nil, fault.ErrZeroCapacity
	}

	log := logger.New("pending")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	q := &Queue{
		log:    log,
		tables: make(map[Purpose]*table, len(purposes)),
	}

	for _, purpose := range purposes {
		items := make(map[string]cache.Item, configuration.Capacity)
		t := &table{
			items: cache.NewFrom(configuration.TimeToLive, configuration.SweepInterval, items),
		}
		p := purpose
		t.items.OnEvicted(func(key string, value interface{}) {
			q.evicted(p, key, value.(*entry))
		})
		q.tables[purpose] = t
	}

	log.Infof("time to live: %s  sweep interval: %s  capacity: %d",
		configuration.TimeToLive, configuration.SweepInterval, configuration.Capacity)

	return q, nil
}

// OnEvict - set the function called with expired hashes
func (q *Queue) OnEvict(f EvictFunc) {
	q.Lock()
	q.onEvict = f
	q.Unlock()
}

func heightKey(height uint64) string {
	return strconv.FormatUint(height, 10)
}

// Enqueue - add a hash to the height entry creating it if necessary
//
// returns false if the hash is already waiting at that height
func (q *Queue) Enqueue(purpose Purpose, height uint64, hash txhash.Hash) bool {
	t := q.tables[purpose]
	if nil == t {
		return false
	}
	key := heightKey(height)

	t.Lock()
	defer t.Unlock()

	var e *entry
	if v, found := t.items.Get(key); found {
		e = v.(*entry)
	} else {
		// an expired entry not yet swept is reported before replacement
		t.items.Delete(key)
	}

	if nil != e {
		e.Lock()
		if e.drained || e.evicted {
			e.Unlock()
			e = nil
		}
	}
	if nil == e {
		e = &entry{
			present: make(map[txhash.Hash]struct{}),
		}
		e.Lock()
	}

	_, duplicate := e.present[hash]
	if !duplicate {
		e.present[hash] = struct{}{}
		e.hashes = append(e.hashes, hash)
	}
	e.Unlock()

	// refresh the time to live
	t.items.Set(key, e, cache.DefaultExpiration)

	if duplicate {
		q.log.Debugf("%s height: %d  duplicate: %s", purpose, height, hash)
		return false
	}
	q.log.Debugf("%s height: %d  enqueued: %s", purpose, height, hash)
	return true
}

// Drain - remove and return all hashes waiting at a height
//
// the result is empty, not nil, when nothing was waiting
func (q *Queue) Drain(purpose Purpose, height uint64) []txhash.Hash {
	t := q.tables[purpose]
	if nil == t {
		return []txhash.Hash{}
	}
	key := heightKey(height)

	t.Lock()
	defer t.Unlock()

	v, found := t.items.Get(key)
	if !found {
		t.items.Delete(key)
		return []txhash.Hash{}
	}
	e := v.(*entry)

	e.Lock()
	hashes := e.hashes
	if e.evicted {
		hashes = nil
	}
	e.drained = true
	e.hashes = nil
	e.Unlock()

	// the eviction callback ignores drained entries
	t.items.Delete(key)

	if 0 == len(hashes) {
		return []txhash.Hash{}
	}
	q.log.Debugf("%s height: %d  drained: %d", purpose, height, len(hashes))
	return hashes
}

// Pending - copy of the hashes currently waiting at a height
func (q *Queue) Pending(purpose Purpose, height uint64) []txhash.Hash {
	t := q.tables[purpose]
	if nil == t {
		return nil
	}
	v, found := t.items.Get(heightKey(height))
	if !found {
		return nil
	}
	e := v.(*entry)

	e.Lock()
	defer e.Unlock()
	if e.drained || e.evicted {
		return nil
	}
	return append([]txhash.Hash(nil), e.hashes...)
}

// Len - number of heights with waiting hashes
func (q *Queue) Len(purpose Purpose) int {
	t := q.tables[purpose]
	if nil == t {
		return 0
	}
	return t.items.ItemCount()
}

// Sweep - remove all expired heights now
func (q *Queue) Sweep() {
	for _, purpose := range purposes {
		q.tables[purpose].items.DeleteExpired()
	}
}

// called by the cache for both expiry and explicit deletion
func (q *Queue) evicted(purpose Purpose, key string, e *entry) {
	e.Lock()
	if e.drained || e.evicted {
		e.Unlock()
		return
	}
	e.evicted = true
	hashes := e.hashes
	e.hashes = nil
	e.Unlock()

	height, err := strconv.ParseUint(key, 10, 64)
	if nil != err {
		q.log.Errorf("%s invalid height key: %q", purpose, key)
		return
	}

	for _, hash := range hashes {
		q.log.Warnf("%s height: %d  expired: %s", purpose, height, hash)
	}

	q.RLock()
	f := q.onEvict
	q.RUnlock()

	if nil != f && 0 != len(hashes) {
		f(purpose, height, hashes)
	}
}
