// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is matched by resolution errors of kind KindNotFound.
	ErrNotFound = errors.New("no configuration found")
	// ErrIOFailure is matched by resolution errors of kind KindIOFailure.
	ErrIOFailure = errors.New("configuration file unreadable")
	// ErrInvalidConfig is matched by resolution errors of kind KindInvalidConfig.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrCommandFailed is matched by resolution errors of kind KindCommandFailed.
	ErrCommandFailed = errors.New("credential command failed")
)

type (
	// ErrorKind classifies why resolution failed.
	ErrorKind int

	// ResolutionError is returned by Resolve. It matches the sentinel of its
	// kind with errors.Is and exposes its cause (a *ParseError,
	// *credential.CommandError or *fs.PathError) to errors.As.
	ResolutionError struct {
		Kind ErrorKind
		// Path is the configuration file involved; empty for KindNotFound.
		Path string
		// Cause is the underlying failure; nil for KindNotFound.
		Cause error
	}
)

const (
	// KindNotFound means no candidate file exists.
	KindNotFound ErrorKind = iota + 1
	// KindIOFailure means the selected file exists but could not be read.
	KindIOFailure
	// KindInvalidConfig means the selected file was rejected by Parse.
	KindInvalidConfig
	// KindCommandFailed means the passcmd could not be run or failed.
	KindCommandFailed
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindIOFailure:
		return "io failure"
	case KindInvalidConfig:
		return "invalid config"
	case KindCommandFailed:
		return "command failed"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindIOFailure:
		return ErrIOFailure
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindCommandFailed:
		return ErrCommandFailed
	default:
		return nil
	}
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound.Error()
	case KindIOFailure:
		return "unable to read " + e.Path + ": " + e.causeText()
	case KindInvalidConfig:
		return "invalid configuration in " + e.Path + ": " + e.causeText()
	case KindCommandFailed:
		return ErrCommandFailed.Error() + ": " + e.causeText()
	default:
		return "configuration error: " + e.causeText()
	}
}

// Unwrap returns the kind sentinel followed by the cause.
func (e *ResolutionError) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// causeText strips the path from *fs.PathError causes, since Error already
// names the file.
func (e *ResolutionError) causeText() string {
	if e.Cause == nil {
		return "unknown error"
	}
	var pathErr *fs.PathError
	if errors.As(e.Cause, &pathErr) && pathErr.Path == e.Path {
		return pathErr.Err.Error()
	}
	return e.Cause.Error()
}
