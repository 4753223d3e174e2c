package gen

import (
	"tpcdsgen/internal/genrow"
)

// DbgenVersionRow is the single dbgen_version row every run produces:
// a record of the engine version and the command line that produced
// the output, mirroring the reference generator's own audit row.
type DbgenVersionRow struct {
	cols []string
}

func (r DbgenVersionRow) Table() string     { return "dbgen_version" }
func (r DbgenVersionRow) Columns() []string { return r.cols }

// GenerateDbgenVersion builds the sole dbgen_version row. It takes no
// row number since the table always has exactly one row; the caller
// supplies every column, commandLine coming from the run's session.
func GenerateDbgenVersion(version, createDate, createTime, commandLine string) genrow.Result {
	cols := []string{version, createDate, createTime, commandLine}
	return genrow.Result{Rows: []genrow.Row{DbgenVersionRow{cols: cols}}, EndOfParent: true}
}
