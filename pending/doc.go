// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pending - transaction hashes waiting for their block to become final
//
// each purpose has its own height keyed table, a height entry is
// created by the first enqueue and removed either by a drain when
// the height becomes final or by expiry when nothing has been added
// for the configured time to live
package pending
