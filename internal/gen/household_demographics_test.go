package gen_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateHouseholdDemographicsIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateHouseholdDemographics(5, 20, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateHouseholdDemographics(5, 20, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateHouseholdDemographicsIncomeBandWithinRange(t *testing.T) {
	res, err := gen.GenerateHouseholdDemographics(1, 20, testRegistry())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Rows[0].Columns()[1])
	band, err := strconv.Atoi(res.Rows[0].Columns()[1])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, band, 1)
	assert.LessOrEqual(t, band, 20)
}
