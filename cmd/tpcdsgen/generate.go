package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/gen"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/permute"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scaling"
	"tpcdsgen/internal/schema"
	"tpcdsgen/internal/session"
)

// implementedTables lists the tables this build runs a generator for.
// The remaining schema.Tables entries are the three returns tables:
// --table accepts them but skips them, since their rows come from the
// matching sales generator and are written into that sales table's file.
var implementedTables = []schema.Table{
	schema.DateDim,
	schema.CustomerAddress,
	schema.Item,
	schema.Store,
	schema.StoreSales,
	schema.CallCenter,
	schema.Warehouse,
	schema.ShipMode,
	schema.Reason,
	schema.IncomeBand,
	schema.HouseholdDemographics,
	schema.CustomerDemographics,
	schema.Customer,
	schema.TimeDim,
	schema.Promotion,
	schema.CatalogPage,
	schema.WebPage,
	schema.WebSite,
	schema.CatalogSales,
	schema.WebSales,
	schema.DbgenVersion,
	schema.Inventory,
}

func generateTables(sess *session.Session, runDir string, registry *dist.Registry, limiter *rate.Limiter, noOutput bool, logger zerolog.Logger) (runSummary, error) {
	summary := runSummary{ScaleFactor: sess.ScaleFactor}

	sf := sess.ScaleFactor
	dims := gen.Dimensions{
		ItemRowCount:       scaling.GetRowCount(schema.Item, sf),
		ItemIDCount:        scaling.GetIdCount(schema.Item, sf),
		StoreRowCount:      scaling.GetRowCount(schema.Store, sf),
		StoreIDCount:       scaling.GetIdCount(schema.Store, sf),
		CustomerRowCount:   scaling.GetRowCount(schema.Customer, sf),
		PromotionCount:     scaling.GetRowCount(schema.Promotion, sf),
		CallCenterRowCount: scaling.GetRowCount(schema.CallCenter, sf),
		CallCenterIDCount:  scaling.GetIdCount(schema.CallCenter, sf),
		CatalogPageCount:   scaling.GetRowCount(schema.CatalogPage, sf),
		WebSiteRowCount:    scaling.GetRowCount(schema.WebSite, sf),
		WebSiteIDCount:     scaling.GetIdCount(schema.WebSite, sf),
		WebPageRowCount:    scaling.GetRowCount(schema.WebPage, sf),
		WebPageIDCount:     scaling.GetIdCount(schema.WebPage, sf),
		ShipModeCount:      scaling.GetRowCount(schema.ShipMode, sf),
		WarehouseRowCount:  scaling.GetRowCount(schema.Warehouse, sf),
	}
	customerDims := gen.CustomerDimensions{
		AddressRowCount:               scaling.GetRowCount(schema.CustomerAddress, sf),
		DemographicsRowCount:          scaling.GetRowCount(schema.CustomerDemographics, sf),
		HouseholdDemographicsRowCount: scaling.GetRowCount(schema.HouseholdDemographics, sf),
	}
	ctx := tableContext{
		dims:               dims,
		customerDims:       customerDims,
		incomeBandRowCount: scaling.GetRowCount(schema.IncomeBand, sf),
		itemIDCount:        scaling.GetIdCount(schema.Item, sf),
		warehouseRowCount:  scaling.GetRowCount(schema.Warehouse, sf),
		commandLine:        sess.CommandLineArguments,
		scaleFactor:        sf,
	}

	for _, t := range sess.ResolvedTables() {
		if !contains(implementedTables, t) {
			continue
		}
		rows, err := generateOneTable(sess, t, runDir, registry, limiter, noOutput, ctx, logger)
		if err != nil {
			return summary, err
		}
		summary.Tables = append(summary.Tables, tableSummary{Name: t.String(), Rows: rows})
	}
	return summary, nil
}

// tableContext bundles every piece of scale-dependent state a table
// generator might need, beyond the row number it is currently on.
type tableContext struct {
	dims               gen.Dimensions
	customerDims       gen.CustomerDimensions
	incomeBandRowCount int64
	itemIDCount        int64
	warehouseRowCount  int64
	commandLine        string
	scaleFactor        float64

	// itemPermutation is the item-key permutation the sales fact
	// generators address via item_index cycling; built once per sales
	// table generation run rather than once per order, since its
	// result is identical every time (the permutation stream's seed
	// does not depend on row number).
	itemPermutation *permute.Permutation

	// catalogDateCursor implements catalog_sales's julian_date /
	// next_date_index calendar-weighted date cursor (spec §4.9); store
	// and web instead draw their own order date with a generic
	// join-key style RNG draw inside the generator itself.
	catalogDateCursor *catalogDateCursor
}

// catalogDateCursor tracks, across a monotonically increasing sequence
// of order numbers, which calendar day's per-day row budget (from
// scaling.GetRowCountForDate) the next order number falls into.
type catalogDateCursor struct {
	scaleFactor   float64
	day           int
	nextDateIndex int64
}

func newCatalogDateCursor(scaleFactor float64) *catalogDateCursor {
	c := &catalogDateCursor{scaleFactor: scaleFactor, day: caldate.DataRangeMin}
	c.nextDateIndex = scaling.GetRowCountForDate(schema.CatalogSales, scaleFactor, c.day)
	return c
}

// dateFor advances the cursor past as many days as needed to cover
// orderNumber, accumulating each day's row budget, and returns the day
// orderNumber lands on.
func (c *catalogDateCursor) dateFor(orderNumber int64) int {
	for orderNumber > c.nextDateIndex && c.day < caldate.DataRangeMax {
		c.day++
		c.nextDateIndex += scaling.GetRowCountForDate(schema.CatalogSales, c.scaleFactor, c.day)
	}
	return c.day
}

func generateOneTable(sess *session.Session, t schema.Table, runDir string, registry *dist.Registry, limiter *rate.Limiter, noOutput bool, ctx tableContext, logger zerolog.Logger) (int64, error) {
	// SCD tables are driven by business-key count: each generateRow call
	// for one business key already emits all of that key's version rows,
	// so the loop below must iterate ids, not the table's total row count.
	iterations := scaling.GetRowCount(t, sess.ScaleFactor)
	if t.KeepsHistory() {
		iterations = scaling.GetIdCount(t, sess.ScaleFactor)
	}
	if t == schema.DbgenVersion {
		iterations = 1
	}
	start, end := sess.RowRange(iterations)

	switch t {
	case schema.StoreSales, schema.CatalogSales, schema.WebSales:
		ctx.itemPermutation = buildItemPermutation(ctx.dims.ItemIDCount)
		if t == schema.CatalogSales {
			ctx.catalogDateCursor = newCatalogDateCursor(ctx.scaleFactor)
		}
	}

	var w *genrow.Writer
	if noOutput {
		w = genrow.NewWriter(io.Discard).WithSeparator(sess.Separator)
	} else {
		f, err := os.Create(filepath.Join(runDir, t.String()+".dat"))
		if err != nil {
			return 0, err
		}
		defer f.Close()
		w = genrow.NewWriter(f).WithSeparator(sess.Separator)
	}

	backgroundCtx := context.Background()
	var written int64
	for rowNum := start; rowNum <= end; rowNum++ {
		if limiter != nil {
			if err := limiter.Wait(backgroundCtx); err != nil {
				return written, err
			}
		}
		res, err := generateRow(t, rowNum, registry, ctx)
		if err != nil {
			return written, err
		}
		if err := w.WriteResult(res); err != nil {
			return written, err
		}
		written += int64(len(res.Rows))
	}
	if err := w.Flush(); err != nil {
		return written, err
	}
	logger.Info().Str("table", t.String()).Int64("rows", written).Msg("generated table")
	return written, nil
}

func generateRow(t schema.Table, rowNum int64, registry *dist.Registry, ctx tableContext) (genrow.Result, error) {
	switch t {
	case schema.DateDim:
		return gen.GenerateDateDim(rowNum)
	case schema.CustomerAddress:
		return gen.GenerateCustomerAddress(rowNum, registry)
	case schema.Item:
		return gen.GenerateItem(rowNum, registry)
	case schema.Store:
		return gen.GenerateStore(rowNum, registry)
	case schema.CallCenter:
		return gen.GenerateCallCenter(rowNum, registry)
	case schema.Warehouse:
		return gen.GenerateWarehouse(rowNum, registry)
	case schema.ShipMode:
		return gen.GenerateShipMode(rowNum, registry)
	case schema.Reason:
		return gen.GenerateReason(rowNum, registry)
	case schema.IncomeBand:
		return gen.GenerateIncomeBand(rowNum, registry)
	case schema.HouseholdDemographics:
		return gen.GenerateHouseholdDemographics(rowNum, ctx.incomeBandRowCount, registry)
	case schema.CustomerDemographics:
		return gen.GenerateCustomerDemographics(rowNum, registry)
	case schema.Customer:
		return gen.GenerateCustomer(rowNum, ctx.customerDims, registry)
	case schema.TimeDim:
		return gen.GenerateTimeDim(rowNum)
	case schema.Promotion:
		return gen.GeneratePromotion(rowNum, ctx.dims.ItemRowCount), nil
	case schema.CatalogPage:
		return gen.GenerateCatalogPage(rowNum, registry)
	case schema.WebPage:
		return gen.GenerateWebPage(rowNum, registry)
	case schema.WebSite:
		return gen.GenerateWebSite(rowNum, registry)
	case schema.StoreSales:
		return gen.GenerateStoreSales(rowNum, ctx.dims, ctx.itemPermutation), nil
	case schema.CatalogSales:
		soldDate := ctx.catalogDateCursor.dateFor(rowNum)
		return gen.GenerateCatalogSales(rowNum, soldDate, ctx.dims, ctx.itemPermutation), nil
	case schema.WebSales:
		return gen.GenerateWebSales(rowNum, ctx.dims, ctx.itemPermutation), nil
	case schema.DbgenVersion:
		return gen.GenerateDbgenVersion("1.0.0", "", "", ctx.commandLine), nil
	case schema.Inventory:
		return gen.GenerateInventory(rowNum, ctx.itemIDCount, ctx.warehouseRowCount), nil
	default:
		return genrow.Result{}, nil
	}
}

// itemPermuteOrdinal seeds the sales generators' shared item-key
// permutation stream, offset well past every real table ordinal
// (internal/schema's highest is 49) so it never collides with a
// column stream.
const itemPermuteOrdinal = 900

// buildItemPermutation draws the Fisher-Yates item-key permutation the
// sales fact generators address via item_index cycling. Its stream is
// seeded independently of row number, so building it fresh here (once
// per sales-table generation run, not once per order) reproduces the
// same permutation every time spec.md's "on first call" language asks
// for, without needing a persistent generator instance across calls.
func buildItemPermutation(itemIDCount int64) *permute.Permutation {
	s := rng.NewStream(itemPermuteOrdinal, 1)
	return permute.Make(s, itemIDCount)
}

func contains(tables []schema.Table, t schema.Table) bool {
	for _, x := range tables {
		if x == t {
			return true
		}
	}
	return false
}
