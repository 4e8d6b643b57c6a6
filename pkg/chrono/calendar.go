// Package chrono provides the calendar-agnostic Date and Time abstractions.
// A Date pairs a concrete calendar value with the operation table of its
// calendar system; a Time does the same for a clock representation. The
// operation table is the Calendar or Clock interface, bound once at
// construction through the type parameter and never rebound, so a Date or
// Time is an immutable value whose behavior is fixed by its calendar.
//
// Only the Gregorian calendar and the plain local clock ship here, but the
// abstractions contain no Gregorian or local specifics beyond the
// generalized week algorithms, which are expressed purely against the
// operation table.
package chrono

import "github.com/coolbeans/chronos/pkg/gregorian"

// Calendar is the operation table every pluggable calendar system supplies.
// The type parameter names the calendar's own concrete date type, so that
// adders and comparisons stay within one calendar system; mixing dates of
// different systems is a compile error rather than a runtime one.
//
// All operations are total over validly-constructed values. Optional
// capabilities (leap years, a day-of-week cycle) are separate interfaces
// discovered by assertion.
type Calendar[C any] interface {
	Year() int
	Month() int
	Day() int
	DayOfYear() int
	DaysInMonth() int
	DaysInYear() int
	AddDays(n int) C
	AddMonths(n int) C
	AddYears(n int) C
	DaysBetween(o C) int
	Until(o C) (years, months, days int)
	AddPeriod(years, months, days int) C
	Before(o C) bool
	After(o C) bool
}

// LeapAware is the optional capability of calendars that have a notion of
// leap years.
type LeapAware interface {
	LeapYear() bool
}

// WeekAware is the optional capability of calendars whose dates fall on a
// seven-day week cycle. It is what the generalized week-numbering
// algorithms require.
type WeekAware interface {
	Weekday() gregorian.Weekday
}

// Period is the symbolic year/month/day difference between two Dates of
// the same calendar system.
type Period struct {
	Years  int
	Months int
	Days   int
}

// Date pairs a calendar value with its operation table and a week rule.
// The zero value is unusable; construct with NewDate or a calendar-specific
// constructor such as Gregorian.
type Date[C Calendar[C]] struct {
	cal  C
	rule WeekRule
}

// NewDate wraps a concrete calendar value under the ISO week rule.
func NewDate[C Calendar[C]](cal C) Date[C] {
	return Date[C]{cal: cal, rule: ISOWeekRule}
}

// WithWeekRule returns a copy of the date bound to a different week rule.
// The calendar value is unchanged.
func (d Date[C]) WithWeekRule(rule WeekRule) Date[C] {
	d.rule = rule
	return d
}

// Calendar returns the wrapped calendar value.
func (d Date[C]) Calendar() C { return d.cal }

// Year returns the calendar year.
func (d Date[C]) Year() int { return d.cal.Year() }

// Month returns the calendar month.
func (d Date[C]) Month() int { return d.cal.Month() }

// Day returns the day of month.
func (d Date[C]) Day() int { return d.cal.Day() }

// DayOfYear returns the 1-based ordinal day within the year.
func (d Date[C]) DayOfYear() int { return d.cal.DayOfYear() }

// DaysInMonth returns the length of the date's month.
func (d Date[C]) DaysInMonth() int { return d.cal.DaysInMonth() }

// DaysInYear returns the length of the date's year.
func (d Date[C]) DaysInYear() int { return d.cal.DaysInYear() }

// LeapYear reports whether the date's year is a leap year. Calendars
// without a leap-year notion report false.
func (d Date[C]) LeapYear() bool {
	if l, ok := any(d.cal).(LeapAware); ok {
		return l.LeapYear()
	}
	return false
}

// AddDays returns the date n days later.
func (d Date[C]) AddDays(n int) Date[C] {
	d.cal = d.cal.AddDays(n)
	return d
}

// AddMonths returns the date n months later, clamped per the calendar's
// rules.
func (d Date[C]) AddMonths(n int) Date[C] {
	d.cal = d.cal.AddMonths(n)
	return d
}

// AddYears returns the date n years later, clamped per the calendar's
// rules.
func (d Date[C]) AddYears(n int) Date[C] {
	d.cal = d.cal.AddYears(n)
	return d
}

// DaysBetween returns the exact signed day difference from d to o.
func (d Date[C]) DaysBetween(o Date[C]) int {
	return d.cal.DaysBetween(o.cal)
}

// Period returns the symbolic difference from d to o. Re-adding it to d
// with Add reproduces o.
func (d Date[C]) Period(o Date[C]) Period {
	years, months, days := d.cal.Until(o.cal)
	return Period{Years: years, Months: months, Days: days}
}

// Add applies a symbolic period: years, then months, then days.
func (d Date[C]) Add(p Period) Date[C] {
	d.cal = d.cal.AddPeriod(p.Years, p.Months, p.Days)
	return d
}

// Before reports whether d is strictly earlier than o.
func (d Date[C]) Before(o Date[C]) bool { return d.cal.Before(o.cal) }

// After reports whether d is strictly later than o.
func (d Date[C]) After(o Date[C]) bool { return d.cal.After(o.cal) }

// Weekday returns the date's day of week, with ok false when the calendar
// has no week cycle.
func (d Date[C]) Weekday() (day gregorian.Weekday, ok bool) {
	w, ok := any(d.cal).(WeekAware)
	if !ok {
		return 0, false
	}
	return w.Weekday(), true
}

// Gregorian constructs a Date on the proleptic Gregorian calendar under
// the ISO week rule. It fails when the fields do not name a valid date.
func Gregorian(year, month, day int) (Date[gregorian.Date], error) {
	g, err := gregorian.New(year, month, day)
	if err != nil {
		return Date[gregorian.Date]{}, err
	}
	return NewDate(g), nil
}
