// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package relay - forward cross chain messages once their blocks are final
//
// the gateway registers candidate transactions by the height of the
// block that contains them, the machine runs when a height becomes
// final and moves every registered transaction one step through the
// exchange:
//
//   Data    (to local)   → Ack sent back to the origin
//   Data    (elsewhere)  → Data forwarded unchanged
//   Ack     (to local)   → sent record removed, exchange complete
//   Ack     (elsewhere)  → Ack forwarded with its source tx id
//   Timeout (to local)   → sent record moved to failed
//   Timeout (elsewhere)  → logged only
//
// local cross chain sends become an initial Data message to the
// destination chain named in the transaction's contract
package relay
