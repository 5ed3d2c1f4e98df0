// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrBlackHeight               = InvalidError("black height differs between paths")
	ErrConfigurationFileNotFound = NotFoundError("configuration file not found")
	ErrCountMismatch             = InvalidError("node count does not match tree count")
	ErrDepthBound                = InvalidError("leaf depth outside black height bounds")
	ErrDuplicateKey              = ExistsError("duplicate key")
	ErrInvalidCheckInterval      = InvalidError("check interval must not be negative")
	ErrInvalidConfiguration      = InvalidError("configuration must return a table")
	ErrInvalidDeleteRatio        = InvalidError("delete ratio must be between 0 and 1")
	ErrInvalidKeyCount           = InvalidError("key count must be positive")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidRate               = InvalidError("operation rate must not be negative")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrKeyNotFound               = NotFoundError("key not found")
	ErrKeyOrder                  = InvalidError("key out of order")
	ErrMembership                = InvalidError("membership does not match operations")
	ErrParentLink                = InvalidError("inconsistent parent link")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrRedViolation              = InvalidError("red node has red child")
	ErrRootNotBlack              = InvalidError("root is not black")
	ErrUnknownScenario           = NotFoundError("unknown scenario")
	ErrWorkloadFailed            = ProcessError("workload failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
