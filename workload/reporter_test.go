// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

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
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestReporter(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := workload.NewRunner(logger.New("runner"), false)
	reporter, err := workload.NewReporter(logger.New("progress"), r, 5*time.Millisecond)
	assert.Nil(t, err, "wrong error")

	processes := background.Processes{reporter}
	p := background.Start(processes, nil)

	s, _ := workload.NewStore("avl")
	defer s.Close()
	_, err = r.Run(s, "serial", workload.SerialKeys(1000))
	assert.Nil(t, err, "run error")

	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.Equal(t, uint64(3000), r.Operations(), "wrong operations")
}

func TestReporterInterval(t *testing.T) {
	r := workload.NewRunner(nil, false)
	reporter, err := workload.NewReporter(nil, r, 0)
	assert.Nil(t, reporter, "reporter created")
	assert.Equal(t, fault.ErrInvalidProgress, err, "wrong error")
}
