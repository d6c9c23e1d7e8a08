// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import (
	"errors"
	"testing"
)

func TestNewErrorKind(t *testing.T) {
	err := NewError(SequenceNotFound, "sequence %q not found", "x")
	if err.Kind != SequenceNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, SequenceNotFound)
	}
	if err.Err != nil {
		t.Errorf("Err = %v, want nil", err.Err)
	}
}

func TestWrapErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(IoError, cause, "failed to write output file %q", "out.txt")
	if err.Kind != IoError {
		t.Errorf("Kind = %v, want %v", err.Kind, IoError)
	}
	if !errors.Is(err, cause) {
		t.Errorf("WrapError(%v) does not unwrap to %v", err, cause)
	}
	var ierr *Error
	if !errors.As(error(err), &ierr) || ierr.Kind != IoError {
		t.Errorf("errors.As failed to recover Kind IoError from %v", err)
	}
}
