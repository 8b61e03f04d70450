// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/storage"
	"github.com/bitmark-inc/relayd/transaction"
)

const (
	testingDirName   = "testing"
	databaseFileName = "store-test.leveldb"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
	os.RemoveAll(databaseFileName)
}

func setup(t *testing.T) *storage.Database {
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

	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

func teardown(db *storage.Database) {
	db.Close()
	logger.Finalise()
	removeFiles()
}

func mustChain(t *testing.T, s string) chain.ID {
	id, err := chain.IDFromBytes([]byte(s))
	if nil != err {
		t.Fatalf("chain id error: %s", err)
	}
	return id
}

func dataMessage(t *testing.T) *crossmsg.Message {
	local := mustChain(t, "local")
	remote := mustChain(t, "remote")
	tx, err := transaction.NewCross([]byte("owner"), local, []byte("payload"), 1234)
	if nil != err {
		t.Fatalf("create transaction error: %s", err)
	}
	return &crossmsg.Message{
		Type:        crossmsg.Data,
		FromChainID: remote,
		ToChainID:   local,
		Transaction: tx,
	}
}
