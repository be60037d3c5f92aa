// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/lockedmap"
)

// the logger package starts a seelog queue goroutine when loaded
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/cihub/seelog.(*asyncLoopLogger).processQueue"))
}

// fills a shared map until told to stop
type filler struct {
	base     int
	inserted int
}

func (state *filler) Run(args interface{}, shutdown <-chan struct{}) {
	m := args.(*lockedmap.Map[int, int])

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		m.Set(state.base+state.inserted, state.inserted)
		state.inserted += 1
		time.Sleep(time.Millisecond)
	}
}

func TestBackground(t *testing.T) {
	m := lockedmap.NewOrdered[int, int]()

	proc1 := &filler{base: 0}
	proc2 := &filler{base: 1000000}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, m)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// both have stopped so the counts are stable
	assert.True(t, proc1.inserted > 0, "first process did not run")
	assert.True(t, proc2.inserted > 0, "second process did not run")
	assert.Equal(t, proc1.inserted+proc2.inserted, m.Size(), "map size")
	assert.Nil(t, m.Check(), "map check")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&filler{}}, lockedmap.NewOrdered[int, int]())
	p.Stop()
	p.Stop()

	var nothing *background.T
	nothing.Stop()
}
