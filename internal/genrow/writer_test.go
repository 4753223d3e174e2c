package genrow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/tpcdserr"
)

type fakeRow struct {
	table string
	cols  []string
}

func (r fakeRow) Table() string     { return r.table }
func (r fakeRow) Columns() []string { return r.cols }

func TestWriteRowJoinsWithTrailingSeparator(t *testing.T) {
	var buf strings.Builder
	w := genrow.NewWriter(&buf)
	require.NoError(t, w.WriteRow(fakeRow{table: "item", cols: []string{"1", "Widget", "42.00"}}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "1|Widget|42.00|\n", buf.String())
}

func TestWriteRowWithCustomSeparator(t *testing.T) {
	var buf strings.Builder
	w := genrow.NewWriter(&buf).WithSeparator(",")
	require.NoError(t, w.WriteRow(fakeRow{table: "item", cols: []string{"a", "b"}}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "a,b,\n", buf.String())
}

func TestWriteRowRejectsNonLatin1(t *testing.T) {
	var buf strings.Builder
	w := genrow.NewWriter(&buf)
	err := w.WriteRow(fakeRow{table: "item", cols: []string{"café 中"}})
	require.Error(t, err)
	var encErr *tpcdserr.EncodingError
	assert.ErrorAs(t, err, &encErr)
}

func TestWriteResultWritesAllRowsInOrder(t *testing.T) {
	var buf strings.Builder
	w := genrow.NewWriter(&buf)
	res := genrow.Result{}.Append(fakeRow{table: "t", cols: []string{"1"}}).Append(fakeRow{table: "t", cols: []string{"2"}})
	require.NoError(t, w.WriteResult(res))
	require.NoError(t, w.Flush())
	assert.Equal(t, "1|\n2|\n", buf.String())
}
