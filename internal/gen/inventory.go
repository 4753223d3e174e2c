package gen

import (
	"fmt"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const inventorySeedsPerRow = 4

// InventoryRow is one inventory row: a weekly on-hand-quantity snapshot
// for one item at one warehouse.
type InventoryRow struct {
	cols []string
}

func (r InventoryRow) Table() string     { return "inventory" }
func (r InventoryRow) Columns() []string { return r.cols }

// GenerateInventory builds the rowNum'th inventory row. Inventory's row
// count is item_id_count x warehouse_row_count x weeks_in_range (see
// internal/scaling), so rowNum is decomposed into (week, warehouse,
// item) indices rather than driving a business key of its own.
func GenerateInventory(rowNum int64, itemIDCount, warehouseRowCount int64) genrow.Result {
	idx := rowNum - 1
	itemIdx := idx % itemIDCount
	warehouseIdx := (idx / itemIDCount) % warehouseRowCount
	weekIdx := idx / (itemIDCount * warehouseRowCount)

	itemBusinessKey := itemIdx + 1
	warehouseSK := warehouseIdx + 1
	dateSK := caldate.DataRangeMin + int(weekIdx)*7

	s := rng.NewStream(int(schema.Inventory.Ordinal()), inventorySeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.Inventory)
	quantityOnHand := s.UniformInt(0, 1000)

	// Inventory's foreign key into item is the business key's currently
	// valid surrogate key as of dateSK, computed the same way a fact
	// row resolves any other SCD dimension's foreign key.
	itemSK := scd.MatchSurrogateKey(itemBusinessKey, dateSK)

	cols := []string{
		fmt.Sprintf("%d", dateSK),
		fmt.Sprintf("%d", itemSK),
		fmt.Sprintf("%d", warehouseSK),
		fmt.Sprintf("%d", quantityOnHand),
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{InventoryRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}
}
