// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastaio is the FASTA ingest collaborator: it reads multi-
// record FASTA files and yields the records the caller asked for. It
// wraps github.com/biogo/biogo/io/seqio/fasta the way loopy.go and its
// sibling cmd tools in the teacher repository read FASTA input.
package fastaio

import (
	"io"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/kortschak/invrep"
)

// AllSequences is the sentinel id requesting every record in a file be
// processed, matching the CLI's ALL_SEQUENCES convention.
const AllSequences = "ALL_SEQUENCES"

// Record is one FASTA entry: its id, description and raw residue
// bytes, prior to any IUPAC sanitization.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	var recs []Record
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		raw := make([]byte, s.Len())
		for i := range raw {
			raw[i] = byte(s.Seq[i])
		}
		recs = append(recs, Record{ID: s.ID, Desc: s.Desc, Seq: raw})
	}
	if sc.Error() != nil {
		return nil, invrep.WrapError(invrep.IoError, sc.Error(), "failed to read fasta records")
	}
	return recs, nil
}

// Select filters recs down to the requested ids, preserving file order.
// If ids contains AllSequences, every record is returned unfiltered. An
// unknown id produces an error listing every id present in recs.
func Select(recs []Record, ids []string) ([]Record, error) {
	wantAll := false
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == AllSequences {
			wantAll = true
			break
		}
		want[id] = true
	}
	if wantAll {
		return recs, nil
	}

	present := make(map[string]bool, len(recs))
	var out []Record
	for _, r := range recs {
		present[r.ID] = true
		if want[r.ID] {
			out = append(out, r)
		}
	}

	for id := range want {
		if !present[id] {
			all := make([]string, 0, len(recs))
			for _, r := range recs {
				all = append(all, r.ID)
			}
			sort.Strings(all)
			return nil, invrep.NewError(invrep.SequenceNotFound, "sequence %q not found; available: %v", id, all)
		}
	}
	return out, nil
}
