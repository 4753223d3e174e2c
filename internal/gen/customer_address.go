package gen

import (
	"fmt"

	"tpcdsgen/internal/address"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const customerAddressSeedsPerRow = 12

// CustomerAddressRow is one customer_address row.
type CustomerAddressRow struct {
	cols []string
}

func (r CustomerAddressRow) Table() string     { return "customer_address" }
func (r CustomerAddressRow) Columns() []string { return r.cols }

// GenerateCustomerAddress builds the customer_address row for rowNum,
// fast-forwarding its dedicated stream to that row before drawing.
func GenerateCustomerAddress(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.CustomerAddress.Ordinal()), customerAddressSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.CustomerAddress)

	addr, err := address.Generate(s, registry)
	if err != nil {
		return genrow.Result{}, err
	}

	locationTypeDist, err := registry.Load("location_types.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	locationType := locationTypeDist.Field(locationTypeDist.PickWeighted(s, "frequency"), "type")

	isRural := s.UniformInt(1, 100) <= 25

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		addr.StreetNumber,
		addr.StreetName,
		addr.StreetType,
		addr.SuiteNumber,
		addr.City,
		addr.County,
		addr.State,
		addr.Zip,
		addr.Country,
		fmt.Sprintf("%d", addr.GmtOffset),
		boolFlag(isRural),
		locationType,
	}

	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{CustomerAddressRow{cols: nullbits.ApplyNulls(cols, mask)}}}, nil
}
