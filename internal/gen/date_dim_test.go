package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateDateDimFirstRowIsCalendarStart(t *testing.T) {
	res, err := gen.GenerateDateDim(1)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	cols := res.Rows[0].Columns()
	assert.Equal(t, "1900-01-01", cols[2])
}

func TestGenerateDateDimIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateDateDim(500)
	require.NoError(t, err)
	res2, err := gen.GenerateDateDim(500)
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateDateDimRejectsRowPastCalendarRange(t *testing.T) {
	_, err := gen.GenerateDateDim(1_000_000_000)
	require.Error(t, err)
}
