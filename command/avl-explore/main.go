// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avl"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "rank", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "kth", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "range", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'R'},
		{Long: "no-print", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || (0 == len(arguments) && 0 == len(options["file"])) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--file=FILE] [--rank=KEY] [--kth=N] [--range=LOW:HIGH] [--no-print] [key…]", program)
	}

	verbose := len(options["verbose"]) > 0

	level := "critical"
	if verbose {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: ".",
		File:      "avl-explore.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("explore")

	keys := arguments
	if len(options["file"]) > 0 {
		keys, err = readKeys(options["file"][0], keys)
		if nil != err {
			exitwithstatus.Message("%s: read keys error: %s", program, err)
		}
	}

	tree := avl.NewFromSlice(avl.Compare[string], keys)
	log.Infof("loaded: %d keys  unique: %d  height: %d", len(keys), tree.Count(), tree.Height())

	// sanity: the height must stay within the theoretical AVL bound
	if n := tree.Count(); n > 0 {
		bound := int(math.Ceil(1.44 * math.Log2(float64(n+1))))
		if tree.Height() > bound {
			log.Criticalf("height: %d exceeds AVL bound: %d", tree.Height(), bound)
			exitwithstatus.Message("%s: corrupt tree: height: %d exceeds bound: %d", program, tree.Height(), bound)
		}
	}

	if 0 == len(options["no-print"]) {
		depth := tree.Print(func(s string) string { return s })
		fmt.Printf("nodes: %d  depth: %d\n", tree.Count(), depth)
	}

	for _, key := range options["rank"] {
		fmt.Printf("rank %q: %d\n", key, tree.Rank(key))
	}

	for _, arg := range options["kth"] {
		k, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: convert kth error: %s", program, err)
		}
		node := tree.KthSmallest(k)
		if nil == node {
			fmt.Printf("kth %d: absent\n", k)
		} else {
			fmt.Printf("kth %d: %q\n", k, node.Value())
		}
	}

	for _, arg := range options["range"] {
		bounds := strings.SplitN(arg, ":", 2)
		if 2 != len(bounds) {
			exitwithstatus.Message("%s: invalid range: %q", program, arg)
		}
		low := bounds[0]
		high := bounds[1]
		fmt.Printf("range [%q,%q]: %d\n", low, high, tree.CountRange(low, high))
		tree.RangeQuery(low, high, func(key string) {
			fmt.Printf("  %s\n", key)
		})
	}
}

// read one key per line appending to keys, blank lines are skipped
func readKeys(filename string, keys []string) ([]string, error) {
	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" != line {
			keys = append(keys, line)
		}
	}
	return keys, scanner.Err()
}
