package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const webPageSeedsPerRow = 12

// WebPageRow is one web_page row: a slowly-changing dimension, each
// business key spanning up to three validity-window versions.
type WebPageRow struct {
	cols []string
}

func (r WebPageRow) Table() string     { return "web_page" }
func (r WebPageRow) Columns() []string { return r.cols }

// GenerateWebPage builds every version row for the businessKey'th web
// page.
func GenerateWebPage(businessKey int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.WebPage.Ordinal()), webPageSeedsPerRow)
	s.SkipRows(businessKey - 1)

	uses, err := registry.Load("web_page_use.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	var res genrow.Result
	var prevURL, prevUse string

	for version := 0; version < scd.Versions; version++ {
		start, end, isCurrent := scd.Window(version)
		mask := nullbits.Roll(s, schema.WebPage)
		flags := scd.ChangeFlags(s.Next())

		url := scd.Field(&flags, false, s.RandomURL(), prevURL)
		use := scd.Field(&flags, false, uses.Field(uses.PickUniform(s), "type"), prevUse)
		prevURL, prevUse = url, use

		accessCount := s.UniformInt(0, 10000)
		linkCount := s.UniformInt(1, 25)
		imageCount := s.UniformInt(1, 25)
		maxAdCount := s.UniformInt(0, 4)

		sk := scd.SurrogateKey(businessKey, version)
		cols := []string{
			fmt.Sprintf("%d", sk),
			fmt.Sprintf("AAAAAAAA%08d", businessKey),
			fmt.Sprintf("%d", start),
			endOrNull(end, isCurrent),
			fmt.Sprintf("%d", businessKey),
			url,
			use,
			fmt.Sprintf("%d", accessCount),
			fmt.Sprintf("%d", linkCount),
			fmt.Sprintf("%d", imageCount),
			fmt.Sprintf("%d", maxAdCount),
		}
		res.Rows = append(res.Rows, WebPageRow{cols: nullbits.ApplyNulls(cols, mask)})
	}
	s.EndRow()
	return res, nil
}
