package gregorian

import "github.com/coolbeans/chronos/pkg/mathx"

// The day count is a bijective integer encoding of every proleptic
// Gregorian date: day 1 is January 1 of year 1, and each later date is one
// higher. Exact day arithmetic is addition on this encoding; no field
// carrying or clamping is ever needed because every integer maps back to
// exactly one valid date.
//
// The conversion works on 400-year eras of 146097 days each, with months
// counted from March so that the leap day falls at the end of the internal
// year.

// eraDays is the length in days of one full 400-year Gregorian cycle.
const eraDays = 146097

// rataDieShift moves the era-based count (zero at 1970-01-01) onto the
// epoch of year 1 day 1.
const rataDieShift = 719163

// DayNumber returns the date's day count, with January 1 of year 1 as
// day 1.
func (d Date) DayNumber() int {
	y, m := d.year, d.month
	if m <= 2 {
		y--
	}
	era := mathx.FloorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int         // month counted from March, [0, 11]
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d.day - 1        // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*eraDays + doe - 719468 + rataDieShift
}

// FromDayNumber is the inverse of DayNumber.
func FromDayNumber(n int) Date {
	z := n - rataDieShift + 719468
	era := mathx.FloorDiv(z, eraDays)
	doe := z - era*eraDays                                 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := doy - (153*mp+2)/5 + 1            // [1, 31]
	var m int
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return Date{year: y, month: m, day: day}
}

// AddDays returns the date n days after d (before, for negative n). Day
// arithmetic goes through the day count and is always exact.
func (d Date) AddDays(n int) Date {
	return FromDayNumber(d.DayNumber() + n)
}

// DaysBetween returns the exact signed number of days from d to o:
// positive when o is later, negative when earlier.
func (d Date) DaysBetween(o Date) int {
	return o.DayNumber() - d.DayNumber()
}
