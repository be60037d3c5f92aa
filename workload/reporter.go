// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/avlmap/fault"
)

// Counter - anything that can report an operation count
type Counter interface {
	Operations() uint64
}

// Reporter - background process logging the progress of a counter
type Reporter struct {
	log      *logger.L
	counter  Counter
	interval time.Duration
}

// NewReporter - create a reporter for use with background.Start
func NewReporter(log *logger.L, counter Counter, interval time.Duration) (*Reporter, error) {
	if interval <= 0 {
		return nil, fault.ErrInvalidProgress
	}
	return &Reporter{
		log:      log,
		counter:  counter,
		interval: interval,
	}, nil
}

// Run - log the operation count and rate every interval until shutdown
func (r *Reporter) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	previous := r.counter.Operations()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := r.counter.Operations()
			rate := float64(n-previous) / r.interval.Seconds()
			previous = n
			r.log.Infof("operations: %s  rate: %s/s", humanize.Comma(int64(n)), humanize.Commaf(rate))
		}
	}
	r.log.Infof("operations: %s", humanize.Comma(int64(r.counter.Operations())))
	r.log.Info("stopped")
}
