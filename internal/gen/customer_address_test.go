package gen_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/gen"
)

func TestGenerateCustomerAddressIsDeterministic(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res1, err := gen.GenerateCustomerAddress(3, registry)
	require.NoError(t, err)
	res2, err := gen.GenerateCustomerAddress(3, registry)
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateCustomerAddressDiffersByRow(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res1, err := gen.GenerateCustomerAddress(1, registry)
	require.NoError(t, err)
	res2, err := gen.GenerateCustomerAddress(2, registry)
	require.NoError(t, err)
	assert.NotEqual(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}
