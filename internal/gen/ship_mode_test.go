package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateShipModeIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateShipMode(4, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateShipMode(4, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}
