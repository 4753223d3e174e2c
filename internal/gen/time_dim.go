package gen

import (
	"fmt"

	"tpcdsgen/internal/genrow"
)

// TimeDimRow is one time_dim row: one second of a 24-hour day, computed
// arithmetically rather than drawn from a random stream since every
// scale factor shares the same fixed time-of-day dimension.
type TimeDimRow struct {
	cols []string
}

func (r TimeDimRow) Table() string     { return "time_dim" }
func (r TimeDimRow) Columns() []string { return r.cols }

// GenerateTimeDim builds the rowNum'th time_dim row (rowNum in
// [1, 86400], one per second of the day).
func GenerateTimeDim(rowNum int64) (genrow.Result, error) {
	secondOfDay := int(rowNum - 1)
	if secondOfDay < 0 || secondOfDay >= 86400 {
		return genrow.Result{}, fmt.Errorf("time_dim row %d out of range [1, 86400]", rowNum)
	}

	hour := secondOfDay / 3600
	minute := (secondOfDay % 3600) / 60
	second := secondOfDay % 60

	amPm := "AM"
	if hour >= 12 {
		amPm = "PM"
	}

	shift, subShift := timeShift(hour)
	mealTime := mealTimeFor(hour)

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("%d", secondOfDay),
		fmt.Sprintf("%d", hour),
		fmt.Sprintf("%d", minute),
		fmt.Sprintf("%d", second),
		amPm,
		shift,
		subShift,
		mealTime,
	}
	return genrow.Result{Rows: []genrow.Row{TimeDimRow{cols: cols}}, EndOfParent: true}, nil
}

func timeShift(hour int) (shift, subShift string) {
	switch {
	case hour >= 7 && hour < 15:
		shift = "first"
	case hour >= 15 && hour < 23:
		shift = "second"
	default:
		shift = "third"
	}
	if hour%2 == 0 {
		subShift = "morning"
	} else {
		subShift = "evening"
	}
	return
}

func mealTimeFor(hour int) string {
	switch {
	case hour >= 7 && hour < 9:
		return "breakfast"
	case hour >= 11 && hour < 13:
		return "lunch"
	case hour >= 17 && hour < 19:
		return "dinner"
	default:
		return ""
	}
}
