// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// invrep finds inverted repeats (biological palindromes) in FASTA
// sequences that may contain degenerate IUPAC characters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kortschak/invrep"
	"github.com/kortschak/invrep/fastaio"
)

var (
	inputFile    = flag.String("f", "input.fasta", "input FASTA file")
	seqNames     = flag.String("s", fastaio.AllSequences, "space-delimited sequence ids to search, or ALL_SEQUENCES")
	minLen       = flag.Int("m", 10, "minimum IR length")
	maxLen       = flag.Int("M", 100, "maximum IR length")
	maxGap       = flag.Int("g", 0, "maximum gap between arms")
	mismatches   = flag.Int("x", 0, "maximum allowed mismatches")
	outputPath   = flag.String("o", "", "output file (single sequence) or directory (multiple)")
	outputFormat = flag.String("F", "classic", "output format: classic, csv or custom")
	quiet        = flag.Bool("q", false, "suppress progress logging")
	procs        = flag.Int("procs", 1, "number of parallel enumerator workers")
	summary      = flag.Bool("summary", false, "append a length/gap summary to the output")
	plotPath     = flag.String("plot", "", "write a PNG histogram of IR lengths to this path")
)

func main() {
	flag.StringVar(inputFile, "input-file", *inputFile, "input FASTA file (long form of -f)")
	flag.StringVar(seqNames, "seq-names", *seqNames, "long form of -s")
	flag.IntVar(minLen, "min-len", *minLen, "long form of -m")
	flag.IntVar(maxLen, "max-len", *maxLen, "long form of -M")
	flag.IntVar(maxGap, "max-gap", *maxGap, "long form of -g")
	flag.IntVar(mismatches, "mismatches", *mismatches, "long form of -x")
	flag.StringVar(outputPath, "output-path", *outputPath, "long form of -o")
	flag.StringVar(outputFormat, "output-format", *outputFormat, "long form of -F")
	flag.BoolVar(quiet, "quiet", *quiet, "long form of -q")
	flag.Parse()

	if *quiet {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}

	params, err := invrep.NewSearchParams(*minLen, *maxLen, *maxGap, *mismatches)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	params.Workers = *procs

	format := invrep.OutputFormat(*outputFormat)
	switch format {
	case invrep.FormatClassic, invrep.FormatCSV, invrep.FormatCustom:
	default:
		fmt.Fprintf(os.Stderr, "invrep: unknown output format %q\n", *outputFormat)
		os.Exit(1)
	}

	in, err := os.Open(*inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, invrep.WrapError(invrep.IoError, err, "failed to open input file %q", *inputFile))
		os.Exit(1)
	}
	defer in.Close()

	records, err := fastaio.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ids := strings.Fields(*seqNames)
	selected, err := fastaio.Select(records, ids)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "invrep: no matching sequences")
		os.Exit(1)
	}

	multi := len(selected) > 1
	if multi && *outputPath != "" {
		if err := os.MkdirAll(*outputPath, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, invrep.WrapError(invrep.IoError, err, "failed to create output directory %q", *outputPath))
			os.Exit(1)
		}
	}

	var allIRs []invrep.IR
	for _, rec := range selected {
		if !*quiet {
			log.Printf("searching %q (%d bp)", rec.ID, len(rec.Seq))
		}

		irs, err := invrep.FindIRs(params, rec.Seq)
		if err != nil {
			if ierr, ok := err.(*invrep.Error); ok && ierr.Kind == invrep.SequenceTooShort && multi {
				log.Printf("skipping %q: %v", rec.ID, err)
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		clean, _ := invrep.Sanitize(rec.Seq)
		cfg := invrep.OutputConfig{
			Format:     format,
			SeqName:    rec.ID,
			MinLen:     *minLen,
			MaxLen:     *maxLen,
			MaxGap:     *maxGap,
			Mismatches: *mismatches,
		}
		header, body, err := invrep.StringifyIRs(cfg, irs, clean, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if *summary {
			s := invrep.Summarize(irs)
			body += fmt.Sprintf(
				"\n# count=%d mean_len=%.2f median_len=%.2f stddev_len=%.2f mean_gap=%.2f\n",
				s.Count, s.MeanLength, s.MedianLength, s.StdDevLength, s.MeanGap,
			)
		}

		if err := writeOutput(*outputPath, rec.ID, multi, header+body); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		allIRs = append(allIRs, irs...)
	}

	if *plotPath != "" {
		if err := invrep.RenderHistogram(allIRs, *plotPath, 20); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeOutput(path, id string, multi bool, content string) error {
	if path == "" {
		if _, err := fmt.Print(content); err != nil {
			return invrep.WrapError(invrep.IoError, err, "failed to write output for %q to stdout", id)
		}
		return nil
	}
	if !multi {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return invrep.WrapError(invrep.IoError, err, "failed to write output file %q", path)
		}
		return nil
	}
	out := filepath.Join(path, id+".out")
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return invrep.WrapError(invrep.IoError, err, "failed to write output file %q", out)
	}
	return nil
}
