// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/statmap/configuration"
	"github.com/bitmark-inc/statmap/fault"
)

type testConfiguration struct {
	InputFile string `gluamapper:"input_file"`
	Echo      bool   `gluamapper:"echo"`
}

const sampleLua = `
local M = {}

M.input_file = "commands.txt"
M.echo = true

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleLua), 0600)
	assert.Nil(t, err)

	options := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err)
	assert.Equal(t, "commands.txt", options.InputFile)
	assert.True(t, options.Echo)
}

func TestParseConfigurationFileRejectsNonPointer(t *testing.T) {
	err := configuration.ParseConfigurationFile("unused.conf", testConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
