// Package session carries the run-wide configuration a generation pass
// shares across every table generator: the scale factor, which tables to
// emit, output layout, and the handful of behavioral knobs spec.md
// exposes at the command line.
package session

import (
	"fmt"

	"tpcdsgen/internal/schema"
	"tpcdsgen/internal/tpcdserr"
)

// Session is the immutable configuration a generation run is built from.
// The driver reads it and passes table generators only plain values (row
// numbers, dimension counts, the command line); no generator reads
// globals, so a run is reproducible from these fields alone.
type Session struct {
	ScaleFactor float64
	Tables      []schema.Table
	OutputDir   string
	Separator   string

	// Parts splits a table's row range across Parts child processes;
	// Part (1-based) selects which slice this run produces. Parts==1
	// means no splitting.
	Parts int
	Part  int

	// IsSexist records the --is-sexist flag. No table generator reads
	// it, so it changes no generated value. Default false; see
	// SPEC_FULL.md's Open Question resolution.
	IsSexist bool

	// CommandLineArguments is the reference generator's dbgen_version
	// echo: the exact argument list the run was invoked with, recorded
	// into the dbgen_version table's row.
	CommandLineArguments string
}

// New validates and builds a Session. tables may be empty, meaning "all
// tables" -- callers resolve that against schema.Tables themselves.
func New(scaleFactor float64, tables []schema.Table, outputDir, separator string, parts, part int) (*Session, error) {
	if scaleFactor < 0 {
		return nil, tpcdserr.Range("scale-factor", scaleFactor)
	}
	if parts < 1 {
		return nil, tpcdserr.Range("parts", parts)
	}
	if part < 1 || part > parts {
		return nil, tpcdserr.Range("part", part)
	}
	if separator == "" {
		separator = "|"
	}
	return &Session{
		ScaleFactor: scaleFactor,
		Tables:      tables,
		OutputDir:   outputDir,
		Separator:   separator,
		Parts:       parts,
		Part:        part,
	}, nil
}

// ResolvedTables returns Tables, or schema.Tables if none were
// explicitly selected.
func (s *Session) ResolvedTables() []schema.Table {
	if len(s.Tables) == 0 {
		return schema.Tables
	}
	return s.Tables
}

// RowRange returns the [start, end] 1-based row numbers (inclusive)
// this session's Part is responsible for, given a table's total row
// count.
func (s *Session) RowRange(totalRows int64) (start, end int64) {
	if s.Parts <= 1 {
		return 1, totalRows
	}
	perPart := totalRows / int64(s.Parts)
	start = int64(s.Part-1)*perPart + 1
	if s.Part == s.Parts {
		end = totalRows
	} else {
		end = start + perPart - 1
	}
	return start, end
}

// String renders a short summary suitable for a startup log line.
func (s *Session) String() string {
	return fmt.Sprintf("scale=%g tables=%d part=%d/%d", s.ScaleFactor, len(s.ResolvedTables()), s.Part, s.Parts)
}
