package genrow

import (
	"bufio"
	"io"

	"tpcdsgen/internal/tpcdserr"
)

// DefaultSeparator is the reference generator's default column
// delimiter.
const DefaultSeparator = "|"

// Writer serializes Rows to an underlying io.Writer in the reference
// generator's flat-file convention: one line per row, columns joined by
// a configurable separator, terminated by the separator itself (every
// TPC-DS dat file line ends in a trailing delimiter before the newline).
//
// Every column value must be representable in ISO-8859-1 (Latin-1): any
// rune above U+00FF is a hard error rather than a silent lossy
// transliteration, since the reference generator's own text assets never
// produce one.
type Writer struct {
	w         *bufio.Writer
	separator string
}

// NewWriter wraps w with the default separator.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), separator: DefaultSeparator}
}

// WithSeparator overrides the column separator.
func (wr *Writer) WithSeparator(sep string) *Writer {
	wr.separator = sep
	return wr
}

// WriteRow writes one row's columns, validating every rune is within
// Latin-1 range before any output reaches the underlying writer, then
// writing each rune of a column as its single ISO-8859-1 byte.
func (wr *Writer) WriteRow(row Row) error {
	cols := row.Columns()
	for _, c := range cols {
		if r, ok := firstOutOfRange(c); ok {
			return tpcdserr.Encoding(row.Table(), r)
		}
	}
	for _, c := range cols {
		for _, r := range c {
			if err := wr.w.WriteByte(byte(r)); err != nil {
				return tpcdserr.Writer(row.Table(), err)
			}
		}
		if _, err := wr.w.WriteString(wr.separator); err != nil {
			return tpcdserr.Writer(row.Table(), err)
		}
	}
	if _, err := wr.w.WriteString("\n"); err != nil {
		return tpcdserr.Writer(row.Table(), err)
	}
	return nil
}

// WriteResult writes every row in a Result in order.
func (wr *Writer) WriteResult(res Result) error {
	for _, row := range res.Rows {
		if err := wr.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output to the underlying writer.
func (wr *Writer) Flush() error {
	if err := wr.w.Flush(); err != nil {
		return tpcdserr.Writer("flush", err)
	}
	return nil
}

func firstOutOfRange(s string) (rune, bool) {
	for _, r := range s {
		if r > 0xFF {
			return r, true
		}
	}
	return 0, false
}
