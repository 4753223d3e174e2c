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

const warehouseSeedsPerRow = 10

// WarehouseRow is one warehouse row. Warehouse does not keep history:
// every scale factor has a fixed small roster of physical warehouses.
type WarehouseRow struct {
	cols []string
}

func (r WarehouseRow) Table() string     { return "warehouse" }
func (r WarehouseRow) Columns() []string { return r.cols }

// GenerateWarehouse builds the rowNum'th warehouse row.
func GenerateWarehouse(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.Warehouse.Ordinal()), warehouseSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.Warehouse)

	addr, err := address.Generate(s, registry)
	if err != nil {
		return genrow.Result{}, err
	}

	sqFt := s.UniformInt(50000, 1000000)
	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		fmt.Sprintf("Warehouse %d", rowNum),
		fmt.Sprintf("%d", sqFt),
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
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{WarehouseRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}, nil
}
