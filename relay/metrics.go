// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "relayd"

// Metrics - relay counters
type Metrics struct {
	Registered *prometheus.CounterVec
	Rejected   prometheus.Counter
	Sent       *prometheus.CounterVec
	Outcomes   *prometheus.CounterVec
	Evicted    *prometheus.CounterVec
}

// NewMetrics - create the counters and register them if a registerer is given
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Registered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "registered_total",
			Help:      "Transactions accepted for relay.",
		}, []string{"purpose"}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_total",
			Help:      "Transactions not accepted for relay.",
		}),
		Sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sent_total",
			Help:      "Messages handed to the sender.",
		}, []string{"mode"}),
		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "outcomes_total",
			Help:      "Result of processing each drained hash.",
		}, []string{"purpose", "outcome"}),
		Evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evicted_total",
			Help:      "Hashes expired before their height became final.",
		}, []string{"purpose"}),
	}

	if nil == registerer {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.Registered, m.Rejected, m.Sent, m.Outcomes, m.Evicted} {
		if err := registerer.Register(c); nil != err {
			return nil, err
		}
	}
	return m, nil
}
