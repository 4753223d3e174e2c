// Package caldate implements Julian day-number calendar arithmetic and
// the two date ranges the engine needs: the full calendar span date_dim
// enumerates, and the narrower operational window SCD validity windows,
// inventory's weeks-in-range, and sales date weighting all share.
package caldate

// DataRangeMin and DataRangeMax bound the engine's operational date
// window: the range spec.md calls JULIAN_DATE_MINIMUM/JULIAN_DATE_MAXIMUM
// throughout its SCD, inventory, and sales-weighting sections. Chosen as
// exactly five years (1826 days, which WeeksInRange rounds up to 261
// weeks) so the inventory row-count formula's "weeks_in_range" term
// matches the worked examples in spec.md §8. See DESIGN.md Open Question 3.
var (
	DataRangeMin = JulianDay(1998, 1, 1)
	DataRangeMax = JulianDay(2002, 12, 31)
)

// CalendarRangeMin and CalendarRangeMax bound date_dim's own row
// enumeration: a full ~200-year calendar independent of the narrower
// operational window above.
var (
	CalendarRangeMin = JulianDay(1900, 1, 1)
	CalendarRangeMax = JulianDay(2100, 12, 31)
)

// JulianDay converts a Gregorian calendar date to a Julian day number,
// using the Fliegel & Van Flandern algorithm.
func JulianDay(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// CalendarDate is the inverse of JulianDay.
func CalendarDate(jd int) (year, month, day int) {
	a := jd + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for a leap year, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal day of jd within its calendar
// year.
func DayOfYear(jd int) int {
	year, _, _ := CalendarDate(jd)
	return jd - JulianDay(year, 1, 1) + 1
}

// calendarWeight assigns each day of a calendar year a weight: a base of
// 10, +4 on days whose day-of-year is 0 or 6 modulo 7 (a weekly uplift
// that follows the day-of-year count, not the actual weekday), and +8
// over the last two twelfths of the year (the November/December holiday
// season), the same qualitative shape the reference generator's
// calendar.dst encodes; the exact reference weights are a TPC-DS
// proprietary asset not present in the retrieval pack, so this engine
// derives an internally consistent substitute from day-of-year alone.
func calendarWeight(dayOfYear, daysInYear int) int {
	weight := 10
	dow := dayOfYear % 7
	if dow == 0 || dow == 6 {
		weight += 4 // weekend uplift
	}
	month := (dayOfYear * 12) / daysInYear
	if month >= 10 { // Nov/Dec holiday uplift
		weight += 8
	}
	return weight
}

// MaxCalendarWeight is the largest value calendarWeight can return.
const MaxCalendarWeight = 10 + 4 + 8

// RowsForDay distributes yearlyRows across a year's days proportional to
// calendarWeight, per spec.md §3.3's date-weighted sales distribution:
//
//	rows_for_day = floor((yearly_rows*W[day] + total/2) / total)
//
// where total = (sum of W over jd's calendar year) * 5 (a five-year
// normalization window), so one year's days share about a fifth of
// yearlyRows.
func RowsForDay(jd int, yearlyRows int64) int64 {
	year, _, _ := CalendarDate(jd)
	doy := DayOfYear(jd)
	days := DaysInYear(year)
	w := int64(calendarWeight(doy, days))
	var yearWeight int64
	for d := 1; d <= days; d++ {
		yearWeight += int64(calendarWeight(d, days))
	}
	total := yearWeight * 5
	return (yearlyRows*w + total/2) / total
}

// WeeksInRange returns the number of whole weeks spanned by
// [min, max] inclusive, rounding up: ceil((max-min+1)/7).
func WeeksInRange(min, max int) int {
	days := max - min + 1
	return (days + 6) / 7
}
