// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

func runStores(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	for _, name := range workload.StoreNames() {
		fmt.Fprintf(m.w, "%s\n", name)
	}
	return nil
}

func runVersion(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	batch := c.Int("batch")
	if batch <= 0 {
		return fault.ErrInvalidBatchSize
	}

	names := c.StringSlice("store")
	if 0 == len(names) {
		names = workload.StoreNames()
	}

	label := "serial"
	keys := workload.SerialKeys(batch)
	if c.Bool("random") {
		label = "random"
		keys = workload.RandomKeys(batch, c.Int64("seed"))
	}

	runner := workload.NewRunner(nil, c.Bool("validate"))

	results := make([]workload.Result, 0, len(names))
	for _, name := range names {
		store, err := workload.NewStore(name)
		if nil != err {
			return fmt.Errorf("store: %q  error: %s", name, err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "running: %s  %s  %s keys\n", name, label, humanize.Comma(int64(batch)))
		}
		result, err := runner.Run(store, label, keys)
		store.Close()
		if nil != err {
			return fmt.Errorf("store: %q  error: %s", name, err)
		}
		results = append(results, result)
	}

	if c.Bool("json") {
		return printJson(m.w, results)
	}
	printTable(m, results)
	return nil
}

func printTable(m *metadata, results []workload.Result) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"store", "keys", "distinct", "set", "get", "del", "ns/op"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Store,
			humanize.Comma(int64(r.Batch)),
			humanize.Comma(int64(r.Distinct)),
			r.Set.Round(time.Microsecond),
			r.Get.Round(time.Microsecond),
			r.Del.Round(time.Microsecond),
			perOperation(r),
		})
	}
	fmt.Fprintf(m.w, "%s\n", tbl.Render())
}

// mean nanoseconds per operation over the three phases
func perOperation(r workload.Result) int64 {
	if 0 == r.Batch {
		return 0
	}
	return r.Total().Nanoseconds() / int64(3*r.Batch)
}
