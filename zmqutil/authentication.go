// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/relayd/fault"
)

var authentication struct {
	sync.Mutex
	started bool
	domains map[string][]string
}

// StartAuthentication - initialise the ZMQ security subsystem
//
// calling it more than once is harmless
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.started {
		return nil
	}

	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		return err
	}
	authentication.started = true
	authentication.domains = make(map[string][]string)
	return nil
}

// StopAuthentication - shut down the ZMQ security subsystem
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.started {
		return
	}
	zmq.AuthStop()
	authentication.started = false
	authentication.domains = nil
}

// AllowClients - restrict a ZAP domain to the listed curve public keys
//
// an empty list admits any client that completes the curve handshake;
// a later call replaces the earlier list
func AllowClients(zapDomain string, publicKeys [][]byte) error {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.started {
		return fault.ErrAuthenticationNotStarted
	}

	keys := make([]string, 0, len(publicKeys))
	for _, k := range publicKeys {
		if publicLength != len(k) {
			return fault.ErrInvalidPublicKey
		}
		keys = append(keys, zmq.Z85encode(string(k)))
	}
	if 0 == len(keys) {
		keys = append(keys, zmq.CURVE_ALLOW_ANY)
	}

	if previous, ok := authentication.domains[zapDomain]; ok {
		zmq.AuthCurveRemove(zapDomain, previous...)
	}
	zmq.AuthCurveAdd(zapDomain, keys...)
	authentication.domains[zapDomain] = keys
	return nil
}

// AllowedClients - the Z85 keys currently admitted to a ZAP domain
func AllowedClients(zapDomain string) []string {
	authentication.Lock()
	defer authentication.Unlock()
	return append([]string(nil), authentication.domains[zapDomain]...)
}
