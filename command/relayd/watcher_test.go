// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/background"
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

func TestWatcherReload(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	directory, fileName := writeConfiguration(t, `return {}`)
	defer os.RemoveAll(directory)

	reloads := make(chan struct{}, 10)
	w, err := newFileWatcher(fileName, logger.New("watcher"), func() {
		reloads <- struct{}{}
	})
	if !assert.Nil(t, err, "watcher error") {
		return
	}

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	// other files in the directory are ignored
	other := filepath.Join(directory, "other.conf")
	assert.Nil(t, ioutil.WriteFile(other, []byte("x"), 0600), "write other")

	select {
	case <-reloads:
		t.Fatal("reload for unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	assert.Nil(t, ioutil.WriteFile(fileName, []byte(`return { chain_id = "01" }`), 0600), "rewrite")

	select {
	case <-reloads:
	case <-time.After(2 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := newFileWatcher("/nonexistent/relayd/relayd.conf", logger.New("watcher"), func() {})
	assert.NotNil(t, err, "missing directory")
}
