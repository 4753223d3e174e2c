// Package genrow defines the row contract every table generator
// produces and the writer that serializes rows to the reference
// generator's pipe-delimited, ISO-8859-1 output format.
package genrow

import "strconv"

// Surrogate formats a surrogate or foreign key value, reproducing the
// reference's rule that a negative surrogate key is written as an empty
// field rather than its literal (negative) digits.
func Surrogate(sk int64) string {
	if sk < 0 {
		return ""
	}
	return strconv.FormatInt(sk, 10)
}

// Row is one output record: its Columns are already formatted strings,
// in the table's declared column order, ready for delimiter-joining.
type Row interface {
	Table() string
	Columns() []string
}

// Result is what one call into a table generator returns: zero or more
// rows (a fact table's order can expand into several line-item rows,
// and a returns-enabled fact table may emit a paired returns row), plus
// whether the generator's per-row seed budget still needs draining.
//
// EndOfParent marks the last child row of a multi-row parent (e.g. the
// last line item of a sales order), which is when the parent's own
// filler pass runs.
type Result struct {
	Rows        []Row
	EndOfParent bool
}

// Append returns a Result with row appended, used by generators that
// build up a slice of line items before returning.
func (r Result) Append(row Row) Result {
	r.Rows = append(r.Rows, row)
	return r
}
