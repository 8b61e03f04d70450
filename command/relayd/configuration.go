// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/configuration"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/publish"
	"github.com/bitmark-inc/relayd/relay"
	"github.com/bitmark-inc/relayd/subscribe"
	"github.com/bitmark-inc/relayd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublicKeyFile  = "relay.public"
	defaultPrivateKeyFile = "relay.private"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "relayd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "relayd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RelayType - queue and retry settings
type RelayType struct {
	TimeToLive     string `gluamapper:"ttl" json:"ttl"`
	SweepInterval  string `gluamapper:"sweep_interval" json:"sweep_interval"`
	Capacity       int    `gluamapper:"capacity" json:"capacity"`
	MaximumRetries int    `gluamapper:"maximum_retries" json:"maximum_retries"`
}

// MetricsType - prometheus exporter
type MetricsType struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	ChainID       string       `gluamapper:"chain_id" json:"chain_id"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Relay      RelayType               `gluamapper:"relay" json:"relay"`
	Publishing publish.Configuration   `gluamapper:"publish" json:"publish"`
	Subscribe  subscribe.Configuration `gluamapper:"subscribe" json:"subscribe"`
	Metrics    MetricsType             `gluamapper:"metrics" json:"metrics"`
	Logging    logger.Configuration    `gluamapper:"logging" json:"logging"`

	// derived from the fields above
	localChain chain.ID
	queue      pending.Configuration
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Relay: RelayType{
			TimeToLive:     pending.DefaultTimeToLive.String(),
			SweepInterval:  pending.DefaultSweepInterval.String(),
			Capacity:       pending.DefaultCapacity,
			MaximumRetries: relay.DefaultMaximumRetries,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublicKeyFile,
			PrivateKey: defaultPrivateKeyFile,
			Rate:       publish.DefaultRate,
		},

		Subscribe: subscribe.Configuration{
			PublicKey:  defaultPublicKeyFile,
			PrivateKey: defaultPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.localChain, err = chain.IDFromHex(options.ChainID)
	if nil != err {
		return nil, fmt.Errorf("chain_id: %q  error: %s", options.ChainID, err)
	}

	options.queue, err = queueConfiguration(options.Relay)
	if nil != err {
		return nil, err
	}
	if options.Relay.MaximumRetries < 0 {
		return nil, fmt.Errorf("maximum_retries: %d must not be negative", options.Relay.MaximumRetries)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Subscribe.PublicKey,
		&options.Subscribe.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := util.EnsureDirectory(d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// convert the duration strings of the relay section
func queueConfiguration(r RelayType) (pending.Configuration, error) {
	ttl, err := time.ParseDuration(r.TimeToLive)
	if nil != err {
		return pending.Configuration{}, fmt.Errorf("ttl: %q  error: %s", r.TimeToLive, err)
	}
	sweep, err := time.ParseDuration(r.SweepInterval)
	if nil != err {
		return pending.Configuration{}, fmt.Errorf("sweep_interval: %q  error: %s", r.SweepInterval, err)
	}
	if ttl <= 0 || sweep <= 0 || r.Capacity <= 0 {
		return pending.Configuration{}, fmt.Errorf("relay: ttl: %s  sweep_interval: %s  capacity: %d must all be positive", ttl, sweep, r.Capacity)
	}
	return pending.Configuration{
		TimeToLive:    ttl,
		SweepInterval: sweep,
		Capacity:      r.Capacity,
	}, nil
}
