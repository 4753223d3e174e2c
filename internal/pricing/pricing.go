// Package pricing implements spec.md §4.10's deterministic pricing
// derivation: wholesale cost, markup, discount, tax, and shipping drawn
// from fixed limits per sales channel, then the returns-side pricing
// that reuses a sales row's own values rather than drawing them anew.
package pricing

import (
	"tpcdsgen/internal/decimal"
	"tpcdsgen/internal/rng"
)

// Pricing is the full set of money and quantity fields one sales or
// returns line item carries.
type Pricing struct {
	WholesaleCost                  decimal.Decimal
	ListPrice                      decimal.Decimal
	SalesPrice                     decimal.Decimal
	Quantity                       int32
	ExtDiscountAmount              decimal.Decimal
	ExtSalesPrice                  decimal.Decimal
	ExtWholesaleCost               decimal.Decimal
	ExtListPrice                   decimal.Decimal
	TaxPercent                     decimal.Decimal
	ExtTax                         decimal.Decimal
	CouponAmount                   decimal.Decimal
	ShipCost                       decimal.Decimal
	ExtShipCost                    decimal.Decimal
	NetPaid                        decimal.Decimal
	NetPaidIncludingTax            decimal.Decimal
	NetPaidIncludingShipping       decimal.Decimal
	NetPaidIncludingShippingAndTax decimal.Decimal
	NetProfit                      decimal.Decimal
	RefundedCash                   decimal.Decimal
	ReversedCharge                 decimal.Decimal
	StoreCredit                    decimal.Decimal
	Fee                            decimal.Decimal
	NetLoss                        decimal.Decimal
}

// Limits bounds the random draws a sales channel's pricing uses.
type Limits struct {
	MaxQuantitySold  int
	MaxMarkup        decimal.Decimal
	MaxDiscount      decimal.Decimal
	MaxWholesaleCost decimal.Decimal
}

const quantityMin = 1

var (
	zero       = decimal.New(0, 2)
	one        = decimal.New(100, 2)
	oneHalf    = decimal.New(50, 2)
	ninePct    = decimal.New(9, 2)
	oneHundred = decimal.New(10000, 2)
)

// StoreSalesLimits, WebSalesLimits, and CatalogSalesLimits are the
// reference generator's fixed per-channel pricing limits.
var (
	StoreSalesLimits   = Limits{100, one, one, oneHundred}
	WebSalesLimits     = Limits{100, decimal.New(200, 2), one, oneHundred}
	CatalogSalesLimits = Limits{100, decimal.New(200, 2), one, oneHundred}
)

// GenerateForSales derives a sales-side Pricing, drawing quantity,
// wholesale cost, markup, discount, coupon usage, shipping, and tax
// from s within limits.
func GenerateForSales(s *rng.Stream, limits Limits) Pricing {
	quantity := s.UniformInt(quantityMin, limits.MaxQuantitySold)
	decQuantity := decimal.New(int64(quantity), 0)

	wholesaleCost := s.UniformDecimal(one, limits.MaxWholesaleCost)
	extWholesaleCost := wholesaleCost.MulDecimal(decQuantity, wholesaleCost.Precision)

	markup := s.UniformDecimal(zero, limits.MaxMarkup)
	markup = markup.Add(one)
	listPrice := wholesaleCost.MulDecimal(markup, 2)

	discount := s.UniformDecimal(zero, limits.MaxDiscount)
	discount = one.Sub(discount)
	salesPrice := listPrice.MulDecimal(discount, 2)

	extListPrice := listPrice.MulDecimal(decQuantity, 2)
	extSalesPrice := salesPrice.MulDecimal(decQuantity, 2)
	extDiscountAmount := extListPrice.Sub(extSalesPrice)

	coupon := s.UniformDecimal(zero, one)
	couponUsage := s.UniformInt(1, 100)
	var couponAmount decimal.Decimal
	if couponUsage <= 20 { // 20% of sales use a coupon
		couponAmount = extSalesPrice.MulDecimal(coupon, 2)
	} else {
		couponAmount = zero
	}

	netPaid := extSalesPrice.Sub(couponAmount)

	shipping := s.UniformDecimal(zero, oneHalf)
	shipCost := listPrice.MulDecimal(shipping, 2)
	extShipCost := shipCost.MulDecimal(decQuantity, 2)
	netPaidIncludingShipping := netPaid.Add(extShipCost)

	taxPercent := s.UniformDecimal(zero, ninePct)
	extTax := netPaid.MulDecimal(taxPercent, 2)
	netPaidIncludingTax := netPaid.Add(extTax)
	netPaidIncludingShippingAndTax := netPaidIncludingShipping.Add(extTax)
	netProfit := netPaid.Sub(extWholesaleCost)

	return Pricing{
		WholesaleCost:                  wholesaleCost,
		ListPrice:                      listPrice,
		SalesPrice:                     salesPrice,
		Quantity:                       int32(quantity),
		ExtDiscountAmount:              extDiscountAmount,
		ExtSalesPrice:                  extSalesPrice,
		ExtWholesaleCost:               extWholesaleCost,
		ExtListPrice:                   extListPrice,
		TaxPercent:                     taxPercent,
		ExtTax:                         extTax,
		CouponAmount:                   couponAmount,
		ShipCost:                       shipCost,
		ExtShipCost:                    extShipCost,
		NetPaid:                        netPaid,
		NetPaidIncludingTax:            netPaidIncludingTax,
		NetPaidIncludingShipping:       netPaidIncludingShipping,
		NetPaidIncludingShippingAndTax: netPaidIncludingShippingAndTax,
		NetProfit:                      netProfit,
	}
}

// GenerateForReturns derives a returns-side Pricing from the matching
// sales row's own wholesale cost, list price, sales price, tax percent,
// discount, and coupon amount, splitting the refund across cash,
// reversed charge, and store credit so the three always sum to the
// amount paid.
func GenerateForReturns(s *rng.Stream, quantity int32, base Pricing) Pricing {
	decQuantity := decimal.New(int64(quantity), 0)
	wholesaleCost := base.WholesaleCost
	listPrice := base.ListPrice
	salesPrice := base.SalesPrice
	taxPercent := base.TaxPercent

	extWholesaleCost := wholesaleCost.MulDecimal(decQuantity, wholesaleCost.Precision)
	extListPrice := listPrice.MulDecimal(decQuantity, 2)
	extSalesPrice := salesPrice.MulDecimal(decQuantity, 2)
	netPaid := extSalesPrice

	shipping := s.UniformDecimal(zero, oneHalf)
	shipCost := listPrice.MulDecimal(shipping, 2)
	extShipCost := shipCost.MulDecimal(decQuantity, 2)
	netPaidIncludingShipping := netPaid.Add(extShipCost)
	extTax := netPaid.MulDecimal(taxPercent, 2)
	netPaidIncludingTax := netPaid.Add(extTax)
	netPaidIncludingShippingAndTax := netPaidIncludingShipping.Add(extTax)
	netProfit := netPaid.Sub(extWholesaleCost)

	cashPct := int64(s.UniformInt(0, 100))
	refundedCash, err := netPaid.MulInt(cashPct).DivInt(100)
	if err != nil {
		refundedCash = zero
	}

	creditPct := int64(s.UniformInt(1, 100))
	paidMinusRefunded := netPaid.Sub(refundedCash)
	reversedCharge, err := paidMinusRefunded.MulInt(creditPct).DivInt(100)
	if err != nil {
		reversedCharge = zero
	}

	storeCredit := netPaid.Sub(reversedCharge).Sub(refundedCash)

	fee := s.UniformDecimal(oneHalf, oneHundred)

	netLoss := netPaidIncludingShippingAndTax.Sub(storeCredit).Sub(refundedCash).Sub(reversedCharge).Add(fee)

	return Pricing{
		WholesaleCost:                  wholesaleCost,
		ListPrice:                      listPrice,
		SalesPrice:                     salesPrice,
		Quantity:                       quantity,
		ExtDiscountAmount:              base.ExtDiscountAmount,
		ExtSalesPrice:                  extSalesPrice,
		ExtWholesaleCost:               extWholesaleCost,
		ExtListPrice:                   extListPrice,
		TaxPercent:                     taxPercent,
		ExtTax:                         extTax,
		CouponAmount:                   base.CouponAmount,
		ShipCost:                       shipCost,
		ExtShipCost:                    extShipCost,
		NetPaid:                        netPaid,
		NetPaidIncludingTax:            netPaidIncludingTax,
		NetPaidIncludingShipping:       netPaidIncludingShipping,
		NetPaidIncludingShippingAndTax: netPaidIncludingShippingAndTax,
		NetProfit:                      netProfit,
		RefundedCash:                   refundedCash,
		ReversedCharge:                 reversedCharge,
		StoreCredit:                    storeCredit,
		Fee:                            fee,
		NetLoss:                        netLoss,
	}
}
