// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultReleaseBatch     = 2000000
	defaultSeed             = 1
	defaultProgressInterval = 10 // seconds

	largestSerialBatch = 64
	finalSerialBatch   = 100
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
		"main":            "info",
	}
)

// the mapper writes into an existing map
func (m LoglevelMap) copy() map[string]string {
	levels := make(map[string]string, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// Configuration - options for a check run
type Configuration struct {
	Batches          []int                `gluamapper:"batches" json:"batches"`
	ReleaseBatch     int                  `gluamapper:"release_batch" json:"release_batch"`
	Seed             int64                `gluamapper:"seed" json:"seed"`
	Validate         bool                 `gluamapper:"validate" json:"validate"`
	ProgressInterval int                  `gluamapper:"progress_interval" json:"progress_interval"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// 1…64 then 100
func defaultBatches() []int {
	batches := make([]int, 0, largestSerialBatch+1)
	for n := 1; n <= largestSerialBatch; n += 1 {
		batches = append(batches, n)
	}
	return append(batches, finalSerialBatch)
}

// will read decode and verify the configuration, an empty file name
// gives the defaults
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	options := &Configuration{
		ReleaseBatch:     defaultReleaseBatch,
		Seed:             defaultSeed,
		Validate:         true,
		ProgressInterval: defaultProgressInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	baseDirectory := "."
	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if _, err := os.Stat(configurationFileName); nil != err {
			return nil, fault.ErrNotFoundConfigFile
		}

		if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(configurationFileName)
	}

	if 0 == len(options.Batches) {
		options.Batches = defaultBatches()
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}

	if err := options.check(); nil != err {
		return nil, err
	}
	return options, nil
}

// reject values that cannot produce a run
func (c *Configuration) check() error {
	for _, n := range c.Batches {
		if n <= 0 {
			return fault.ErrInvalidBatchSize
		}
	}
	if c.ReleaseBatch <= 0 {
		return fault.ErrInvalidBatchSize
	}
	if c.ProgressInterval <= 0 {
		return fault.ErrInvalidProgress
	}
	return nil
}
