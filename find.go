// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import (
	"bytes"
	"sort"
	"sync"
)

// engine owns every array derived from a sequence for the lifetime of a
// single FindIRs call: the double-text, its suffix array, inverse
// suffix array, LCP array, and RMQ preprocessing. Nothing here survives
// the call that built it.
type engine struct {
	text   []byte
	n      int
	sa     []int32
	inv    []int32
	lcp    []int32
	rmq    *rmq
	mm     *MatchMatrix
	params SearchParams
}

// Sanitize strips CR/LF from seq, lowercases it, and rejects any byte
// outside the 18-letter IUPAC alphabet.
func Sanitize(seq []byte) ([]byte, error) {
	out := make([]byte, 0, len(seq))
	for _, b := range seq {
		if b == '\r' || b == '\n' {
			continue
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if !IsIUPAC(b) {
			return nil, errf(InvalidCharacter, "byte %q is not a valid IUPAC symbol", b)
		}
		out = append(out, b)
	}
	return out, nil
}

// buildEngine sanitizes seq, validates bounds, and constructs every
// array the IR enumerator needs.
func buildEngine(params SearchParams, seq []byte) (*engine, []byte, error) {
	clean, err := Sanitize(seq)
	if err != nil {
		return nil, nil, err
	}
	if err := params.checkBounds(len(clean)); err != nil {
		return nil, nil, err
	}

	n := len(clean)
	sn := 2*n + 2
	text := make([]byte, sn)
	copy(text, clean)
	text[n] = sentinelLeft
	copy(text[n+1:], ReverseComplement(clean))
	text[sn-1] = sentinelRight

	sa := buildSuffixArray(text)
	inv := inverseSuffixArray(sa)
	lcp := buildLCP(text, sa, inv)
	rmqTable := newRMQ(lcp)

	e := &engine{
		text:   text,
		n:      n,
		sa:     sa,
		inv:    inv,
		lcp:    lcp,
		rmq:    rmqTable,
		mm:     NewMatchMatrix(),
		params: params,
	}
	return e, clean, nil
}

// FindIRs enumerates every maximal-by-endpoint inverted repeat in seq
// under params. The sequence is sanitized (CR/LF stripped, lowercased)
// before matching, so callers need not pre-clean their input. Results
// are sorted by left ascending, gap ascending, right descending, per
// spec.md's post-sort comparator.
func FindIRs(params SearchParams, seq []byte) ([]IR, error) {
	e, _, err := buildEngine(params, seq)
	if err != nil {
		return nil, err
	}

	var irs []IR
	if params.Workers > 1 {
		irs = e.enumerateParallel(params.Workers)
	} else {
		irs = e.enumerateSerial()
	}

	sort.Slice(irs, func(a, b int) bool {
		x, y := irs[a], irs[b]
		if x.Left != y.Left {
			return x.Left < y.Left
		}
		if x.Gap != y.Gap {
			return x.Gap < y.Gap
		}
		return x.Right > y.Right
	})
	return irs, nil
}

// enumerateSerial runs the center loop in a single goroutine.
func (e *engine) enumerateSerial() []IR {
	lo, hi := centersFor(len(e.text), e.params.MinLen)
	var irs []IR
	for cc := lo; cc <= hi; cc++ {
		irs = append(irs, e.irsForCenter(cc)...)
	}
	return irs
}

// enumerateParallel shards the center range across a pool of workers,
// each with its own private scratch, concatenating partial result
// slices before the caller's deterministic sort restores order. The
// worker-pool shape (buffered job channel, sync.WaitGroup) follows the
// compression worker pool pattern used elsewhere in the retrieved
// corpus for CPU-bound, embarrassingly-parallel per-item work.
func (e *engine) enumerateParallel(workers int) []IR {
	lo, hi := centersFor(len(e.text), e.params.MinLen)
	if hi < lo {
		return nil
	}

	jobs := make(chan int, 256)
	results := make(chan []IR, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local []IR
			for cc := range jobs {
				local = append(local, e.irsForCenter(cc)...)
			}
			results <- local
		}()
	}

	go func() {
		for cc := lo; cc <= hi; cc++ {
			jobs <- cc
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var irs []IR
	for part := range results {
		irs = append(irs, part...)
	}
	return irs
}

// equalFold reports whether a and b are the same sequence once
// sanitized. It reports false if either fails to sanitize.
func equalFold(a, b []byte) bool {
	sa, err1 := Sanitize(a)
	sb, err2 := Sanitize(b)
	if err1 != nil || err2 != nil {
		return false
	}
	return bytes.Equal(sa, sb)
}
