// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/statmap/fault"
)

var testLog *logger.L

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "statmap-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}
	testLog = logger.New("test")

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func TestInterpreter(t *testing.T) {
	script := `put 1 1
put 2 2
put 3 3
noecho
find 2
find 9
size
print
print_key_stats 2
`
	out := &strings.Builder{}
	in := newInterpreter(true, out, testLog)
	err := in.run(strings.NewReader(script))
	assert.Nil(t, err)

	expected := "put 1 1\nput 2 2\nput 3 3\nnoecho\n" +
		"2\nNot found!\n3\n" +
		"[2:2]([1:1](),()),([3:3](),())\n" +
		"2:2(2){3,6,1,3}\n"
	assert.Equal(t, expected, out.String())
}

func TestExecuteErrors(t *testing.T) {
	in := newInterpreter(false, &strings.Builder{}, testLog)

	assert.Nil(t, in.execute(""))
	assert.Nil(t, in.execute("   "))
	assert.Equal(t, fault.ErrCommandIsInvalid, in.execute("bogus"))
	assert.Equal(t, fault.ErrInvalidArgumentCount, in.execute("put 1"))
	assert.Equal(t, fault.ErrInvalidNumber, in.execute("put x 1"))
	assert.Equal(t, fault.ErrInvalidArgumentCount, in.execute("erase"))
	assert.Equal(t, fault.ErrInvalidNumber, in.execute("find x"))
}
