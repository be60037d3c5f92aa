// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

func TestParseVariables(t *testing.T) {
	v, err := parseVariables([]string{"seed=5", "name=a=b"})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, map[string]string{"seed": "5", "name": "a=b"}, v, "wrong variables")

	_, err = parseVariables([]string{"seed"})
	assert.NotNil(t, err, "missing error")

	_, err = parseVariables([]string{"=5"})
	assert.NotNil(t, err, "missing error")
}

func TestApplyOptions(t *testing.T) {
	c, err := getConfiguration("", nil)
	assert.Nil(t, err, "configuration error")

	options := map[string][]string{
		"batch": {"17"},
		"seed":  {"3"},
	}
	assert.Nil(t, applyOptions(c, options, false, true), "wrong error")
	assert.Equal(t, []int{17}, c.Batches, "wrong batches")
	assert.Equal(t, int64(3), c.Seed, "wrong seed")
	assert.True(t, c.Validate, "validation off")
	assert.True(t, c.Logging.Console, "console off")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "wrong main level")
	assert.Equal(t, "info", defaultLogLevels["main"], "defaults modified")

	assert.Nil(t, applyOptions(c, map[string][]string{"batch": {"500"}}, true, false), "wrong error")
	assert.Equal(t, 500, c.ReleaseBatch, "wrong release batch")
	assert.False(t, c.Validate, "validation on in release")

	err = applyOptions(c, map[string][]string{"batch": {"0"}}, false, false)
	assert.Equal(t, fault.ErrInvalidBatchSize, err, "wrong error")
}

func TestCheck(t *testing.T) {
	runner := workload.NewRunner(nil, true)
	results, err := check(runner, storeName, []int{1, 2, 3, 10}, 42)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 8, len(results), "wrong result count")
	assert.Equal(t, "serial", results[0].Label, "wrong label")
	assert.Equal(t, "random", results[1].Label, "wrong label")
	assert.Equal(t, 10, results[7].Batch, "wrong batch")
	assert.Equal(t, uint64(3*2*(1+2+3+10)), runner.Operations(), "wrong operations")
}

const (
	testingDirName = "testing"
)

func setupTestLogger() {
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

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestCheckFailureIsLogged(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	err := fault.Initialise()
	assert.Nil(t, err, "fault initialise")

	runner := workload.NewRunner(nil, true)
	results, err := check(runner, "no-such-store", []int{5}, 1)
	assert.Equal(t, fault.ErrUnknownStore, err, "wrong error")
	assert.Equal(t, 0, len(results), "results returned")
	assert.Equal(t, uint64(0), runner.Operations(), "operations run")

	fault.Finalise()
	logger.Finalise()

	b, err := os.ReadFile(filepath.Join(testingDirName, "testing.log"))
	assert.Nil(t, err, "read log")
	assert.True(t, strings.Contains(string(b), `store: "no-such-store"`), "failure not logged")
}
