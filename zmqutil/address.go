// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/relayd/fault"
)

// CanonicalAddress - make an IP:Port into a tcp:// endpoint
//
// examples:
//   IPv4:  127.0.0.1:1234  →  tcp://127.0.0.1:1234
//   IPv6:  [::1]:1234      →  tcp://[::1]:1234
//   any:   *:1234          →  tcp://*:1234
func CanonicalAddress(hostPort string) (string, bool, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, err
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return "", false, fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", false, fault.ErrInvalidPortNumber
	}
	p := strconv.Itoa(numericPort)

	host = strings.TrimSpace(host)
	if "*" == host {
		return "tcp://*:" + p, false, nil
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return "", false, fault.ErrInvalidIPAddress
	}

	if nil != IP.To4() {
		return "tcp://" + IP.String() + ":" + p, false, nil
	}
	return "tcp://[" + IP.String() + "]:" + p, true, nil
}
