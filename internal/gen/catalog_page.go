package gen

import (
	"fmt"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const catalogPageSeedsPerRow = 8

// CatalogPageRow is one catalog_page row: a page within a mailed
// catalog, valid for a department and a date range.
type CatalogPageRow struct {
	cols []string
}

func (r CatalogPageRow) Table() string     { return "catalog_page" }
func (r CatalogPageRow) Columns() []string { return r.cols }

// GenerateCatalogPage builds the rowNum'th catalog_page row.
func GenerateCatalogPage(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.CatalogPage.Ordinal()), catalogPageSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.CatalogPage)

	types, err := registry.Load("catalog_page_types.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	typ := types.Field(types.PickUniform(s), "type")
	department := fmt.Sprintf("department #%d", s.UniformInt(1, 10))
	number := s.UniformInt(1, 100)

	startDate := s.UniformInt(caldate.DataRangeMin, caldate.DataRangeMax-90)
	endDate := startDate + 90
	if endDate > caldate.DataRangeMax {
		endDate = caldate.DataRangeMax
	}

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		fmt.Sprintf("%d", startDate),
		fmt.Sprintf("%d", endDate),
		department,
		fmt.Sprintf("%d", number),
		typ,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{CatalogPageRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}, nil
}
