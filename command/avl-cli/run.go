// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avl"
)

// build the tree from the configured key file
func loadTree(m *metadata) (*avl.Tree[string], error) {
	if "" == m.file {
		return nil, ErrRequiredKeyFile
	}

	f, err := os.Open(m.file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	total := 0
	tree := avl.New(avl.Compare[string])
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line {
			continue
		}
		total += 1
		tree.Insert(line)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d  unique: %d  height: %d\n", total, tree.Count(), tree.Height())
	}
	return tree, nil
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(m)
	if nil != err {
		return err
	}

	depth := tree.Fprint(m.w, func(key string) string { return key })
	fmt.Fprintf(m.w, "nodes: %d  height: %d  depth: %d\n", tree.Count(), tree.Height(), depth)
	return nil
}

func runRank(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := c.Args().First()
	if "" == key {
		return ErrRequiredKey
	}

	tree, err := loadTree(m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%d\n", tree.Rank(key))
	return nil
}

func runKth(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	arg := c.Args().First()
	if "" == arg {
		return ErrRequiredIndex
	}
	k, err := strconv.Atoi(arg)
	if nil != err {
		return ErrInvalidIndex
	}

	tree, err := loadTree(m)
	if nil != err {
		return err
	}

	node := tree.KthSmallest(k)
	if c.Bool("largest") {
		node = tree.KthLargest(k)
	}
	if nil == node {
		return ErrNotFoundIndex
	}

	fmt.Fprintf(m.w, "%s\n", node.Value())
	return nil
}

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	low := c.Args().Get(0)
	high := c.Args().Get(1)
	if "" == low || "" == high {
		return ErrRequiredBounds
	}
	if low > high {
		return ErrInvalidBounds
	}

	tree, err := loadTree(m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "count: %d\n", tree.CountRange(low, high))
	tree.RangeQuery(low, high, func(key string) {
		fmt.Fprintf(m.w, "%s\n", key)
	})
	return nil
}

func runAudit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(m)
	if nil != err {
		return err
	}

	if !tree.CheckOrder() {
		return ErrCorruptOrder
	}
	if !tree.CheckBalance() {
		return ErrCorruptBalance
	}
	if !tree.CheckCounts() {
		return ErrCorruptCounts
	}

	fmt.Fprintf(m.w, "ok: %d nodes  height: %d\n", tree.Count(), tree.Height())
	return nil
}
