// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/relayd/background"
	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/commit"
	"github.com/bitmark-inc/relayd/finality"
	"github.com/bitmark-inc/relayd/messagebus"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/publish"
	"github.com/bitmark-inc/relayd/relay"
	"github.com/bitmark-inc/relayd/storage"
	"github.com/bitmark-inc/relayd/store"
	"github.com/bitmark-inc/relayd/subscribe"
	"github.com/bitmark-inc/relayd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("local chain: %s", theConfiguration.localChain)
	log.Infof("database: %q", theConfiguration.Database.Name)

	// connection info
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "Subscribe", theConfiguration.Subscribe)

	// start the data storage
	log.Info("initialise storage")
	database, err := storage.Open(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer database.Close()

	messages := store.NewMessages(database)
	transactions := store.NewTransactions(database)

	identity, err := chain.NewStatic(theConfiguration.localChain)
	if nil != err {
		log.Criticalf("chain identity error: %s", err)
		exitwithstatus.Message("chain identity error: %s", err)
	}

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	metrics, err := relay.NewMetrics(registry)
	if nil != err {
		log.Criticalf("metrics initialise error: %s", err)
		exitwithstatus.Message("metrics initialise error: %s", err)
	}

	if "" != theConfiguration.Metrics.Listen {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{
			Addr:    theConfiguration.Metrics.Listen,
			Handler: mux,
		}
		go func() {
			log.Infof("metrics listener on: %s", theConfiguration.Metrics.Listen)
			if err := server.ListenAndServe(); nil != err && http.ErrServerClosed != err {
				log.Errorf("metrics listener error: %s", err)
			}
		}()
		defer server.Close()
	}

	// pending heights
	log.Info("initialise pending")
	queue, err := pending.New(theConfiguration.queue)
	if nil != err {
		log.Criticalf("pending initialise error: %s", err)
		exitwithstatus.Message("pending initialise error: %s", err)
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}
	defer zmqutil.StopAuthentication()

	// outbound messages
	log.Info("initialise publish")
	broadcaster, err := publish.New(&theConfiguration.Publishing, messages)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}

	checker := commit.New(transactions)

	log.Info("initialise relay")
	r, err := relay.New(relay.Collaborators{
		Queue:        queue,
		Committer:    checker,
		Identity:     identity,
		Sender:       broadcaster,
		Messages:     messages,
		Transactions: transactions,
	}, relay.Configuration{
		MaximumRetries: theConfiguration.Relay.MaximumRetries,
		Metrics:        metrics,
	})
	if nil != err {
		log.Criticalf("relay initialise error: %s", err)
		exitwithstatus.Message("relay initialise error: %s", err)
	}

	// the checker must see a height before the machine drains it
	notifier := finality.NewNotifier()
	notifier.Register(checker)
	notifier.Register(r.Machine)

	// inbound chain events
	log.Info("initialise subscribe")
	subscriber, err := subscribe.New(&theConfiguration.Subscribe, subscribe.Handlers{
		Transactions: transactions,
		Registrar:    r.Gateway,
		Messages:     messages,
		Finality:     messagebus.Bus.Finality,
	})
	if nil != err {
		log.Criticalf("subscribe initialise error: %s", err)
		exitwithstatus.Message("subscribe initialise error: %s", err)
	}

	processes := background.Processes{
		finality.NewConsumer(messagebus.Bus.Finality, notifier),
		broadcaster,
		subscriber,
	}

	// configuration changes only adjust what can change while running
	watcher, err := newFileWatcher(configurationFile, logger.New("watcher"), func() {
		reloaded, err := getConfiguration(configurationFile, nil)
		if nil != err {
			log.Errorf("reload configuration error: %s", err)
			return
		}
		broadcaster.SetRate(reloaded.Publishing.Rate, reloaded.Publishing.Burst)
	})
	if nil != err {
		log.Warnf("configuration watcher error: %s", err)
	} else {
		processes = append(processes, watcher)
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
