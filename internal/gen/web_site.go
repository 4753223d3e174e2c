package gen

import (
	"fmt"

	"tpcdsgen/internal/address"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const webSiteSeedsPerRow = 16

// WebSiteRow is one web_site row: a small slowly-changing dimension,
// every scale factor keeping roughly the same handful of sites.
type WebSiteRow struct {
	cols []string
}

func (r WebSiteRow) Table() string     { return "web_site" }
func (r WebSiteRow) Columns() []string { return r.cols }

// GenerateWebSite builds every version row for the businessKey'th web
// site.
func GenerateWebSite(businessKey int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.WebSite.Ordinal()), webSiteSeedsPerRow)
	s.SkipRows(businessKey - 1)

	var res genrow.Result
	var prevName, prevManager, prevClass string

	for version := 0; version < scd.Versions; version++ {
		start, end, isCurrent := scd.Window(version)
		mask := nullbits.Roll(s, schema.WebSite)
		flags := scd.ChangeFlags(s.Next())

		addr, err := address.Generate(s, registry)
		if err != nil {
			return genrow.Result{}, err
		}

		name := scd.Field(&flags, false, fmt.Sprintf("site_%d", businessKey), prevName)
		manager := scd.Field(&flags, false, fmt.Sprintf("Manager %d", s.UniformInt(1, 1000)), prevManager)
		class := scd.Field(&flags, false, fmt.Sprintf("class #%d", s.UniformInt(1, 5)), prevClass)
		prevName, prevManager, prevClass = name, manager, class

		marketID := s.UniformInt(1, 10)
		taxPercentage := s.UniformInt(0, 11)

		sk := scd.SurrogateKey(businessKey, version)
		cols := []string{
			fmt.Sprintf("%d", sk),
			fmt.Sprintf("AAAAAAAA%08d", businessKey),
			fmt.Sprintf("%d", start),
			endOrNull(end, isCurrent),
			fmt.Sprintf("%d", businessKey),
			name,
			class,
			fmt.Sprintf("%d", marketID),
			manager,
			fmt.Sprintf("%d.%02d", taxPercentage, s.UniformInt(0, 99)),
			addr.StreetNumber,
			addr.StreetName,
			addr.StreetType,
			addr.City,
			addr.County,
			addr.State,
			addr.Zip,
			addr.Country,
			fmt.Sprintf("%d", addr.GmtOffset),
		}
		res.Rows = append(res.Rows, WebSiteRow{cols: nullbits.ApplyNulls(cols, mask)})
	}
	s.EndRow()
	return res, nil
}
