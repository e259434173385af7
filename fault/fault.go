// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrCommandIsInvalid     = InvalidError("command is invalid")
	ErrConfigParseFailed    = ProcessError("configuration parse failed")
	ErrInvalidArgumentCount = InvalidError("argument count is invalid")
	ErrInvalidNumber        = InvalidError("number is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrNotFoundCommandFile  = NotFoundError("command file is not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
