package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/gen"
)

func catalogDims() gen.Dimensions {
	return gen.Dimensions{
		ItemRowCount: testItemIDCount, ItemIDCount: testItemIDCount,
		CustomerRowCount: 5000, PromotionCount: 20,
		CallCenterRowCount: 6, CallCenterIDCount: 6,
		CatalogPageCount: 100, ShipModeCount: 20, WarehouseRowCount: 5,
	}
}

func TestGenerateCatalogSalesIsDeterministic(t *testing.T) {
	perm := testItemPermutation()
	res1 := gen.GenerateCatalogSales(10, caldate.DataRangeMin, catalogDims(), perm)
	res2 := gen.GenerateCatalogSales(10, caldate.DataRangeMin, catalogDims(), perm)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateCatalogSalesShipDateAfterSoldDate(t *testing.T) {
	res := gen.GenerateCatalogSales(1, caldate.DataRangeMin, catalogDims(), testItemPermutation())
	cols := res.Rows[0].Columns()
	require.NotEqual(t, cols[0], cols[1])
}

func TestGenerateCatalogSalesLineItemCountInRange(t *testing.T) {
	res := gen.GenerateCatalogSales(1, caldate.DataRangeMin, catalogDims(), testItemPermutation())
	lineItems := 0
	for _, row := range res.Rows {
		if row.Table() == "catalog_sales" {
			lineItems++
		}
	}
	assert.GreaterOrEqual(t, lineItems, 4)
	assert.LessOrEqual(t, lineItems, 14)
}

func TestGenerateCatalogSalesSometimesProducesAReturn(t *testing.T) {
	foundReturn := false
	perm := testItemPermutation()
	for i := int64(1); i <= 50; i++ {
		res := gen.GenerateCatalogSales(i, caldate.DataRangeMin, catalogDims(), perm)
		for _, row := range res.Rows {
			if row.Table() == "catalog_returns" {
				foundReturn = true
			}
		}
	}
	assert.True(t, foundReturn, "expected at least one return across 50 orders")
}
