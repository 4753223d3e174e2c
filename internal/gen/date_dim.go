// Package gen implements one row generator per TPC-DS table: given a
// 1-based row number and the run's scale factor, each generator produces
// the genrow.Result for that row, drawing from its own per-column
// rng.Stream and delegating to internal/dist, internal/address,
// internal/scd, and internal/pricing as the table requires.
package gen

import (
	"fmt"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/genrow"
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var quarterNames = [...]string{"Q1", "Q2", "Q3", "Q4"}

// DateDimRow is one date_dim row: a purely derived record, with no
// random draws, since every field is a deterministic function of the
// row's Julian day.
type DateDimRow struct {
	cols []string
}

func (r DateDimRow) Table() string     { return "date_dim" }
func (r DateDimRow) Columns() []string { return r.cols }

// GenerateDateDim builds the date_dim row for the rowNum'th day of
// caldate.CalendarRangeMin..CalendarRangeMax (1-based).
func GenerateDateDim(rowNum int64) (genrow.Result, error) {
	jd := caldate.CalendarRangeMin + int(rowNum) - 1
	if jd > caldate.CalendarRangeMax {
		return genrow.Result{}, fmt.Errorf("date_dim row %d is past the calendar range", rowNum)
	}
	year, month, day := caldate.CalendarDate(jd)
	dow := ((jd % 7) + 7) % 7
	weekSeq := (jd - caldate.CalendarRangeMin) / 7
	monthSeq := (year-1900)*12 + month - 1
	quarter := (month-1)/3 + 1
	quarterSeq := (year-1900)*4 + quarter - 1
	isWeekend := dow == 0 || dow == 6
	isHoliday := (month == 12 && day == 25) || (month == 1 && day == 1) || (month == 7 && day == 4)
	firstDom := caldate.JulianDay(year, month, 1)
	lastDom := caldate.JulianDay(year, month+1, 1) - 1
	sameDayLastYear := caldate.JulianDay(year-1, month, day)
	sameDayLastQuarter := jd - 91

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		fmt.Sprintf("%d", monthSeq),
		fmt.Sprintf("%d", weekSeq),
		fmt.Sprintf("%d", quarterSeq),
		fmt.Sprintf("%d", year),
		fmt.Sprintf("%d", dow+1),
		fmt.Sprintf("%d", month),
		fmt.Sprintf("%d", day),
		fmt.Sprintf("%d", quarter),
		fmt.Sprintf("%d", year),
		fmt.Sprintf("%d", quarterSeq),
		fmt.Sprintf("%d", weekSeq),
		dayNames[dow],
		quarterNames[quarter-1],
		boolFlag(isHoliday),
		boolFlag(isWeekend),
		boolFlag(false),
		fmt.Sprintf("%d", firstDom),
		fmt.Sprintf("%d", lastDom),
		fmt.Sprintf("%d", sameDayLastYear),
		fmt.Sprintf("%d", sameDayLastQuarter),
		boolFlag(jd == caldate.DataRangeMax),
		boolFlag(false),
		boolFlag(false),
		boolFlag(false),
		boolFlag(false),
	}
	return genrow.Result{Rows: []genrow.Row{DateDimRow{cols: cols}}}, nil
}

func boolFlag(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
