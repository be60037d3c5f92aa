// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceViolation      = ProcessError("subtree heights differ by more than one")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = ProcessError("node count does not match size")
	ErrDeleteMismatch        = ProcessError("delete returned an unexpected value")
	ErrGetMismatch           = ProcessError("get returned an unexpected value")
	ErrHeightMismatch        = ProcessError("cached height is incorrect")
	ErrInvalidBatchSize      = InvalidError("batch size is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidProgress       = InvalidError("progress interval is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrNilComparator         = InvalidError("comparator is nil")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = ProcessError("keys are not in strictly increasing order")
	ErrParentLinkMismatch    = ProcessError("parent link does not point to owner")
	ErrSizeMismatch          = ProcessError("size does not match expected count")
	ErrTreeDestroyed         = InvalidError("tree has been destroyed")
	ErrUnknownStore          = NotFoundError("store name is not known")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
