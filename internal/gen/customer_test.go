package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func customerDims() gen.CustomerDimensions {
	return gen.CustomerDimensions{AddressRowCount: 1000, DemographicsRowCount: 500, HouseholdDemographicsRowCount: 200}
}

func TestGenerateCustomerIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateCustomer(11, customerDims(), testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateCustomer(11, customerDims(), testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateCustomerEmailContainsLogin(t *testing.T) {
	res, err := gen.GenerateCustomer(3, customerDims(), testRegistry())
	require.NoError(t, err)
	cols := res.Rows[0].Columns()
	login := cols[15]
	email := cols[16]
	assert.Contains(t, email, login)
}
