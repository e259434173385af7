// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/statmap/configuration"
	"github.com/bitmark-inc/statmap/fault"
)

// basic defaults
const (
	defaultInputFile = "input.txt"

	defaultLogDirectory = "log"
	defaultLogFile      = "statmap.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the driver settings, optionally read from a Lua file
type Configuration struct {
	InputFile string               `gluamapper:"input_file" json:"input_file"`
	Echo      bool                 `gluamapper:"echo" json:"echo"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// read and decode the configuration, or just the defaults when no
// file is given
func getConfiguration(fileName string) (*Configuration, error) {

	options := &Configuration{
		InputFile: defaultInputFile,
		Echo:      true,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	if "" == fileName {
		return options, nil
	}

	if _, err := os.Stat(fileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	return options, nil
}
