// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import "fmt"

// Kind identifies the class of error returned by the package's exported
// functions.
type Kind int

const (
	// InvalidParameter indicates a SearchParams constraint was violated,
	// such as min_len > max_len.
	InvalidParameter Kind = iota
	// SequenceTooShort indicates min_len or mismatches is not smaller
	// than the sequence length.
	SequenceTooShort
	// InvalidCharacter indicates the sequence contains a byte outside
	// the IUPAC alphabet.
	InvalidCharacter
	// SequenceNotFound indicates a requested record id was absent from
	// an input file.
	SequenceNotFound
	// IoError indicates a wrapped filesystem or stream failure.
	IoError
	// InvalidOutputFormat indicates an unrecognised output format name.
	InvalidOutputFormat
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case SequenceTooShort:
		return "sequence too short"
	case InvalidCharacter:
		return "invalid character"
	case SequenceNotFound:
		return "sequence not found"
	case IoError:
		return "io error"
	case InvalidOutputFormat:
		return "invalid output format"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by this package. Callers that
// need to distinguish failure classes should use errors.As and inspect
// Kind rather than comparing error strings.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invrep: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("invrep: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// NewError builds a tagged *Error of the given Kind. It is exposed for
// collaborator packages (fastaio, cmd/invrep) that need to surface one
// of this package's error kinds without reaching into an unexported
// constructor.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return errf(kind, format, args...)
}

// WrapError is NewError plus an underlying error, reachable through
// Unwrap for errors.Is/errors.As chains.
func WrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return wrapf(kind, err, format, args...)
}
