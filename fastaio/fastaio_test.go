// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastaio

import (
	"errors"
	"strings"
	"testing"

	"github.com/kortschak/invrep"
)

const twoRecords = `>seq1 first record
ACGTACGT
ACGT
>seq2 second record
TTTTGGGG
`

func TestReadAll(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(twoRecords))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" {
		t.Errorf("recs[0].ID = %q, want %q", recs[0].ID, "seq1")
	}
	if string(recs[0].Seq) != "ACGTACGTACGT" {
		t.Errorf("recs[0].Seq = %q, want %q", recs[0].Seq, "ACGTACGTACGT")
	}
	if recs[1].ID != "seq2" {
		t.Errorf("recs[1].ID = %q, want %q", recs[1].ID, "seq2")
	}
	if string(recs[1].Seq) != "TTTTGGGG" {
		t.Errorf("recs[1].Seq = %q, want %q", recs[1].Seq, "TTTTGGGG")
	}
}

func TestSelectAll(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(twoRecords))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(recs, []string{AllSequences})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected all 2 records, got %d", len(got))
	}
}

func TestSelectSubset(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(twoRecords))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(recs, []string{"seq2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "seq2" {
		t.Fatalf("expected only seq2, got %+v", got)
	}
}

func TestSelectUnknownID(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(twoRecords))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Select(recs, []string{"nope"})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), "seq1") || !strings.Contains(err.Error(), "seq2") {
		t.Errorf("error should list available ids: %v", err)
	}
	var ierr *invrep.Error
	if !errors.As(err, &ierr) || ierr.Kind != invrep.SequenceNotFound {
		t.Errorf("expected SequenceNotFound, got %v", err)
	}
}
