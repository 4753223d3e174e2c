// Package schema holds the static TPC-DS table metadata the rest of the
// engine is keyed on: identity, ordinal (for SCD date offsets), and the
// per-table flags, null basis points, and not-null bitmaps spec.md §3.1
// and §4.4 describe.
package schema

// Table identifies one TPC-DS table (or, for SStore, a source table used
// only to derive SCD keys, never emitted).
type Table int

const (
	CallCenter Table = iota
	CatalogPage
	CatalogReturns
	CatalogSales
	Warehouse
	ShipMode
	Reason
	IncomeBand
	HouseholdDemographics
	CustomerDemographics
	CustomerAddress
	Customer
	DateDim
	TimeDim
	Item
	Promotion
	Store
	StoreReturns
	StoreSales
	WebPage
	WebReturns
	WebSales
	WebSite
	DbgenVersion
	Inventory
	SStore
)

var names = [...]string{
	"call_center", "catalog_page", "catalog_returns", "catalog_sales",
	"warehouse", "ship_mode", "reason", "income_band",
	"household_demographics", "customer_demographics", "customer_address",
	"customer", "date_dim", "time_dim", "item", "promotion", "store",
	"store_returns", "store_sales", "web_page", "web_returns", "web_sales",
	"web_site", "dbgen_version", "inventory", "s_store",
}

func (t Table) String() string { return names[t] }

// ordinal gives each table's position in the reference generator's
// enumeration; the internal/gen generators seed their rng streams from
// it (rng.NewStream(int(t.Ordinal()), ...)).
var ordinals = [...]int64{
	0, 1, 2, 3, 4, 5, 6, 13, 8, 6, 5, 4, 7, 18, 11, 12, 15, 16, 17, 20, 21,
	22, 23, 24, 10, 49,
}

func (t Table) Ordinal() int64 { return ordinals[t] }

type flags struct {
	keepsHistory bool
	isSmall      bool
	isDateBased  bool
}

var tableFlags = [...]flags{
	CallCenter:            {keepsHistory: true, isSmall: true},
	CatalogPage:           {},
	CatalogReturns:        {},
	CatalogSales:          {isDateBased: true},
	Warehouse:             {isSmall: true},
	ShipMode:              {isSmall: true},
	Reason:                {isSmall: true},
	IncomeBand:            {isSmall: true},
	HouseholdDemographics: {},
	CustomerDemographics:  {},
	CustomerAddress:       {},
	Customer:              {},
	DateDim:               {},
	TimeDim:               {},
	Item:                  {keepsHistory: true},
	Promotion:             {},
	Store:                 {keepsHistory: true, isSmall: true},
	StoreReturns:          {},
	StoreSales:            {isDateBased: true},
	WebPage:               {keepsHistory: true},
	WebReturns:            {},
	WebSales:              {isDateBased: true},
	WebSite:               {keepsHistory: true, isSmall: true},
	DbgenVersion:          {},
	Inventory:             {isDateBased: true},
	SStore:                {},
}

// KeepsHistory reports whether this table is a slowly changing
// dimension (SCD type 2): rows carry a business key plus a validity
// window instead of being unique per business entity.
func (t Table) KeepsHistory() bool { return tableFlags[t].keepsHistory }

// IsSmall reports whether this table's scaling model treats it as a
// small, largely scale-invariant dimension.
func (t Table) IsSmall() bool { return tableFlags[t].isSmall }

// IsDateBased reports whether this table's row count is driven by the
// calendar (a fact table generated one day at a time) rather than by a
// flat anchor count.
func (t Table) IsDateBased() bool { return tableFlags[t].isDateBased }

var nullBasisPoints = [...]int32{
	100, 200, 400, 100, 100, 100, 100, 0, 0, 0, 600, 700, 0, 0, 50, 200,
	100, 700, 900, 250, 900, 5, 100, 0, 1000, 0,
}

// NullBasisPoints returns the table's null probability in basis points
// (parts per 10,000), the denominator internal/nullbits rolls against.
func (t Table) NullBasisPoints() int32 { return nullBasisPoints[t] }

var notNullBitMap = [...]int64{
	0xB, 0x3, 0x10007, 0x28000, 0x3, 0x3, 0x3, 0x1, 0x1, 0x1, 0x3, 0x13,
	0x3, 0x3, 0xB, 0x3, 0xB, 0x204, 0x204, 0xB, 0x2004, 0x20008, 0xB, 0x0,
	0x07, 0x0,
}

// NotNullBitMap returns a bitmask of column positions that are never
// allowed to roll null regardless of the table's null basis points
// (surrogate keys, required foreign keys).
func (t Table) NotNullBitMap() int64 { return notNullBitMap[t] }

// Tables lists every user-visible table in output order (excludes
// SStore, a source table never emitted).
var Tables = []Table{
	CallCenter, CatalogPage, CatalogReturns, CatalogSales, Warehouse,
	ShipMode, Reason, IncomeBand, HouseholdDemographics,
	CustomerDemographics, CustomerAddress, Customer, DateDim, TimeDim,
	Item, Promotion, Store, StoreReturns, StoreSales, WebPage, WebReturns,
	WebSales, WebSite, DbgenVersion, Inventory,
}

// ByName looks up a table by its lowercase name, as accepted by the
// --table CLI flag.
func ByName(name string) (Table, bool) {
	for _, t := range Tables {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
