// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the store being checked
const storeName = "avl"

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
		{Long: "release", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "batch", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	release := len(options["release"]) > 0

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	variables, err := parseVariables(arguments)
	if nil != err {
		exitwithstatus.Message("%s: argument error: %s", program, err)
	}

	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := applyOptions(theConfiguration, options, release, verbose); nil != err {
		exitwithstatus.Message("%s: option error: %s", program, err)
	}

	// start logging
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	runner := workload.NewRunner(logger.New("runner"), theConfiguration.Validate)

	reporter, err := workload.NewReporter(logger.New("progress"), runner, time.Duration(theConfiguration.ProgressInterval)*time.Second)
	if nil != err {
		log.Criticalf("progress reporter error: %s", err)
		exitwithstatus.Message("progress reporter error: %s", err)
	}
	processes := background.Processes{reporter}
	p := background.Start(processes, nil)

	batches := theConfiguration.Batches
	if release {
		batches = []int{theConfiguration.ReleaseBatch}
	}

	results, err := check(runner, storeName, batches, theConfiguration.Seed)
	p.Stop()

	if nil != err {
		exitwithstatus.Message("%s: check failed: %s", program, err)
	}

	for _, r := range results {
		log.Infof("%s  batch: %d  distinct: %d  set: %s  get: %s  del: %s", r.Label, r.Batch, r.Distinct, r.Set, r.Get, r.Del)
	}

	if quiet {
		return
	}
	if release {
		for _, r := range results {
			fmt.Printf("%-6s %s keys\n", r.Label, humanize.Comma(int64(r.Batch)))
			fmt.Printf("  set: %s\n", r.Set)
			fmt.Printf("  get: %s\n", r.Get)
			fmt.Printf("  del: %s\n", r.Del)
		}
		return
	}
	fmt.Printf("passed: %d runs  %s operations\n", len(results), humanize.Comma(int64(runner.Operations())))
}

// run the serial then random workload for every batch size, a failure
// is logged on the PANIC channel
func check(runner *workload.Runner, name string, batches []int, seed int64) ([]workload.Result, error) {
	results := make([]workload.Result, 0, 2*len(batches))
	for i, n := range batches {
		for _, w := range []struct {
			label string
			keys  []uint64
		}{
			{"serial", workload.SerialKeys(n)},
			{"random", workload.RandomKeys(n, seed+int64(i))},
		} {
			store, err := workload.NewStore(name)
			if nil != err {
				fault.Criticalf("store: %q  error: %s", name, err)
				return results, err
			}
			result, err := runner.Run(store, w.label, w.keys)
			store.Close()
			if nil != err {
				fault.Criticalf("%s  batch: %d  check failed: %s", w.label, n, err)
				return results, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

// command line overrides of the configuration
func applyOptions(c *Configuration, options map[string][]string, release bool, verbose bool) error {
	if n := len(options["batch"]); n > 0 {
		batch, err := strconv.Atoi(options["batch"][n-1])
		if nil != err || batch <= 0 {
			return fault.ErrInvalidBatchSize
		}
		if release {
			c.ReleaseBatch = batch
		} else {
			c.Batches = []int{batch}
		}
	}
	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 10, 64)
		if nil != err {
			return err
		}
		c.Seed = seed
	}
	if release {
		c.Validate = false
	}
	if verbose {
		c.Logging.Console = true
		levels := make(map[string]string, len(c.Logging.Levels)+1)
		for k, v := range c.Logging.Levels {
			levels[k] = v
		}
		levels["main"] = "debug"
		c.Logging.Levels = levels
	}
	return nil
}

// name=value arguments
func parseVariables(arguments []string) (map[string]string, error) {
	variables := make(map[string]string, len(arguments))
	for _, a := range arguments {
		s := strings.SplitN(a, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("expected name=value, got: %q", a)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--release] [--batch=N] [--seed=N] [name=value...]\n\n", program)
	fmt.Printf("  --release             (-r)  - one large batch, no validation, print timings\n")
	fmt.Printf("  --batch=N             (-b)  - override batch sizes with a single size\n")
	fmt.Printf("  --seed=N              (-s)  - seed for random keys\n")
	fmt.Printf("  --config-file=FILE    (-c)  - Lua configuration file\n")
	fmt.Printf("  name=value                  - set variables[name] in the configuration file\n\n")
}
