package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/pricing"
	"tpcdsgen/internal/rng"
)

func TestGenerateForSalesProducesConsistentExtensions(t *testing.T) {
	s := rng.NewStream(1, 20)
	p := pricing.GenerateForSales(s, pricing.StoreSalesLimits)

	assert.GreaterOrEqual(t, p.Quantity, int32(1))
	assert.LessOrEqual(t, p.Quantity, int32(100))

	assert.Equal(t, p.ExtListPrice.Sub(p.ExtSalesPrice).String(), p.ExtDiscountAmount.String())
	assert.Equal(t, p.NetPaid.Add(p.ExtTax).String(), p.NetPaidIncludingTax.String())
	assert.Equal(t, p.NetPaid.Add(p.ExtShipCost).String(), p.NetPaidIncludingShipping.String())
	assert.Equal(t, p.NetPaidIncludingShipping.Add(p.ExtTax).String(), p.NetPaidIncludingShippingAndTax.String())
	assert.Equal(t, p.NetPaid.Sub(p.ExtWholesaleCost).String(), p.NetProfit.String())
}

func TestGenerateForSalesIsDeterministic(t *testing.T) {
	s1 := rng.NewStream(3, 20)
	s2 := rng.NewStream(3, 20)
	p1 := pricing.GenerateForSales(s1, pricing.WebSalesLimits)
	p2 := pricing.GenerateForSales(s2, pricing.WebSalesLimits)
	require.Equal(t, p1, p2)
}

func TestGenerateForReturnsReusesSalesFields(t *testing.T) {
	s := rng.NewStream(5, 20)
	sale := pricing.GenerateForSales(s, pricing.CatalogSalesLimits)

	rs := rng.NewStream(6, 10)
	ret := pricing.GenerateForReturns(rs, sale.Quantity, sale)

	assert.Equal(t, sale.WholesaleCost.String(), ret.WholesaleCost.String())
	assert.Equal(t, sale.ListPrice.String(), ret.ListPrice.String())
	assert.Equal(t, sale.SalesPrice.String(), ret.SalesPrice.String())
	assert.Equal(t, sale.TaxPercent.String(), ret.TaxPercent.String())
	assert.Equal(t, sale.CouponAmount.String(), ret.CouponAmount.String())
}

func TestGenerateForReturnsBalancesRefundComponents(t *testing.T) {
	s := rng.NewStream(8, 20)
	sale := pricing.GenerateForSales(s, pricing.StoreSalesLimits)

	rs := rng.NewStream(9, 10)
	ret := pricing.GenerateForReturns(rs, sale.Quantity, sale)

	sum := ret.RefundedCash.Add(ret.ReversedCharge).Add(ret.StoreCredit)
	assert.Equal(t, ret.NetPaid.String(), sum.String())
}
