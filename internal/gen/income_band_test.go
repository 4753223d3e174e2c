package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateIncomeBandEnumeratesInOrder(t *testing.T) {
	res1, err := gen.GenerateIncomeBand(1, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateIncomeBand(2, testRegistry())
	require.NoError(t, err)
	assert.NotEqual(t, res1.Rows[0].Columns()[1], res2.Rows[0].Columns()[1])
}

func TestGenerateIncomeBandIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateIncomeBand(1, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateIncomeBand(1, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}
