// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/statmap/avl"
	"github.com/bitmark-inc/statmap/display"
	"github.com/bitmark-inc/statmap/fault"
)

// interpreter - executes the command language against one tree
type interpreter struct {
	tree *avl.Tree
	echo bool
	out  io.Writer
	log  *logger.L
}

func newInterpreter(echo bool, out io.Writer, log *logger.L) *interpreter {
	return &interpreter{
		tree: avl.New(),
		echo: echo,
		out:  out,
		log:  log,
	}
}

// run - execute every line from a reader
//
// a failing command is logged and skipped; only a read failure stops
// the run
func (in *interpreter) run(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if in.echo {
			fmt.Fprintln(in.out, line)
		}
		if err := in.execute(line); nil != err {
			in.log.Warnf("command: %q  error: %s", line, err)
		}
	}
	return s.Err()
}

// execute a single command line
func (in *interpreter) execute(line string) error {
	tokens := strings.Fields(line)
	if 0 == len(tokens) {
		return nil
	}

	switch command := tokens[0]; command {

	case "put":
		if len(tokens) < 3 {
			return fault.ErrInvalidArgumentCount
		}
		key, err := strconv.ParseInt(tokens[1], 10, 64)
		if nil != err {
			return fault.ErrInvalidNumber
		}
		value, err := strconv.ParseInt(tokens[2], 10, 64)
		if nil != err {
			return fault.ErrInvalidNumber
		}
		in.tree.Put(key, value)

	case "erase":
		key, err := in.oneKey(tokens)
		if nil != err {
			return err
		}
		in.tree.Erase(key)

	case "find":
		key, err := in.oneKey(tokens)
		if nil != err {
			return err
		}
		if w := in.tree.Find(key); nil != w {
			fmt.Fprintln(in.out, w.Value())
		} else {
			fmt.Fprintln(in.out, "Not found!")
		}

	case "print_key_stats":
		key, err := in.oneKey(tokens)
		if nil != err {
			return err
		}
		if w := in.tree.Find(key); nil != w {
			fmt.Fprintln(in.out, display.EntryStats(w))
		} else {
			fmt.Fprintln(in.out, "Not found!")
		}

	case "size":
		fmt.Fprintln(in.out, in.tree.Size())

	case "print":
		display.Parenthetic(in.out, in.tree.Root(), false)
		fmt.Fprintln(in.out)

	case "print_stats":
		display.Parenthetic(in.out, in.tree.Root(), true)
		fmt.Fprintln(in.out)

	case "print_tree":
		display.TreeLayout(in.out, in.tree.Root(), 0, false)

	case "print_stats_tree":
		display.TreeLayout(in.out, in.tree.Root(), 0, true)

	case "noecho":
		in.echo = false

	default:
		return fault.ErrCommandIsInvalid
	}
	return nil
}

// internal: parse the single key argument of a command
func (in *interpreter) oneKey(tokens []string) (int64, error) {
	if len(tokens) < 2 {
		return 0, fault.ErrInvalidArgumentCount
	}
	key, err := strconv.ParseInt(tokens[1], 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	return key, nil
}
