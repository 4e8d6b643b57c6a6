// Package gregorian implements the proleptic Gregorian calendar: date
// validity, leap years, exact day arithmetic through a bijective day count,
// month and year arithmetic with day clamping, and symbolic period
// decomposition. Dates are immutable values; every operation returns a new
// Date, and a Date obtained from New is valid by construction.
package gregorian

import "fmt"

// Date is a proleptic Gregorian calendar date. Years at or below zero are
// valid and follow the same leap-year rule as positive years. The zero
// value is not a usable date; construct through New.
type Date struct {
	year  int
	month int
	day   int
}

// New returns the date y-m-d, or an error if the fields do not name a valid
// proleptic Gregorian date.
func New(year, month, day int) (Date, error) {
	if !IsValid(year, month, day) {
		return Date{}, fmt.Errorf("%d-%d-%d is not a valid gregorian date", year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is New for dates known valid at compile time, such as test
// fixtures and epoch constants. It panics on an invalid date.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// except century years, which must be divisible by 400.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of the given month, accounting for leap
// years. Month must be in 1..12; out-of-range months return the sentinel 0
// rather than panicking, since a bad month here is a caller bug and not a
// recoverable condition.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// IsValid reports whether y-m-d names a real proleptic Gregorian date.
func IsValid(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// Year returns the date's year.
func (d Date) Year() int { return d.year }

// Month returns the date's month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the date's day of month.
func (d Date) Day() int { return d.day }

// Weekday returns the date's day of week.
func (d Date) Weekday() Weekday {
	return weekdayOf(d.year, d.month, d.day)
}

// DayOfYear returns the 1-based ordinal day within the date's year.
func (d Date) DayOfYear() int {
	doy := d.day
	for m := 1; m < d.month; m++ {
		doy += DaysInMonth(d.year, m)
	}
	return doy
}

// DaysInMonth returns the length of the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.year, d.month)
}

// DaysInYear returns 366 in leap years, 365 otherwise.
func (d Date) DaysInYear() int {
	if IsLeapYear(d.year) {
		return 366
	}
	return 365
}

// LeapYear reports whether the date's year is a leap year.
func (d Date) LeapYear() bool {
	return IsLeapYear(d.year)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// String returns the date as year-month-day with zero-padded month and day.
// Formatting beyond this diagnostic form is out of the engine's scope.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
