package chrono

import (
	"github.com/coolbeans/chronos/pkg/gregorian"
	"github.com/coolbeans/chronos/pkg/mathx"
)

// WeekRule configures week numbering for a calendar or region: which
// weekday opens a week, and how many days of a new year its first week
// must contain. It is a plain configuration record, not global state;
// distinct regions supply distinct rules.
type WeekRule struct {
	// FirstDay is the weekday a week starts on.
	FirstDay gregorian.Weekday
	// MinimalDays is the least number of days of a year that must fall in
	// a week for that week to count as the year's week 1. Valid values are
	// 1 through 7.
	MinimalDays int
}

// ISOWeekRule is the ISO-8601 week rule: weeks start Monday, and week 1 is
// the first week with at least four days in the new year.
var ISOWeekRule = WeekRule{FirstDay: gregorian.Monday, MinimalDays: 4}

// weekPosition locates the date inside its year's week grid: the 0-based
// day position counted from the start of the week containing January 1,
// and the week-grid offset of January 1 itself.
func (d Date[C]) weekPosition(w WeekAware) (pos, jan1Offset int) {
	doy := d.cal.DayOfYear()
	rel := mathx.FloorMod(int(w.Weekday())-int(d.rule.FirstDay), 7)
	jan1Offset = mathx.FloorMod(rel-(doy-1), 7)
	return doy - 1 + jan1Offset, jan1Offset
}

// firstWeekCounts reports whether the week containing January 1 has enough
// days in the year to count as week 1.
func (d Date[C]) firstWeekCounts(jan1Offset int) bool {
	return 7-jan1Offset >= d.rule.MinimalDays
}

// weekCount returns the number of numbered weeks in the date's year under
// the bound rule, 52 or 53.
func (d Date[C]) weekCount(jan1Offset int) int {
	last := d.cal.DaysInYear() - 1 + jan1Offset
	count := last / 7
	if d.firstWeekCounts(jan1Offset) {
		count++
	}
	if last%7+1 < d.rule.MinimalDays {
		// The final partial week belongs to next year's week 1.
		count--
	}
	return count
}

// WeekOfYear returns the date's week number within its own calendar year.
// A result of 0 marks the overlap week at the start of the year whose days
// belong to the previous year's last week; a result one past the year's
// week count marks days belonging to week 1 of the next year. Use
// WeekOfWeekBasedYear and WeekBasedYear to resolve both overlaps. ok is
// false when the calendar has no week cycle.
func (d Date[C]) WeekOfYear() (week int, ok bool) {
	w, ok := any(d.cal).(WeekAware)
	if !ok {
		return 0, false
	}
	pos, jan1Offset := d.weekPosition(w)
	week = pos / 7
	if d.firstWeekCounts(jan1Offset) {
		week++
	}
	return week, true
}

// weekBased resolves both overlap sentinels of WeekOfYear into the single
// (week-based year, week) pair that owns the date, so the two public
// accessors can never disagree.
func (d Date[C]) weekBased() (year, week int, ok bool) {
	week, ok = d.WeekOfYear()
	if !ok {
		return 0, 0, false
	}
	w, _ := any(d.cal).(WeekAware)
	_, jan1Offset := d.weekPosition(w)
	switch {
	case week == 0:
		// Overlap at the start of the year: renumber from the previous
		// year's final day, which can never itself land in a head overlap,
		// so this recurses at most once. Under rules demanding more than
		// four minimal days that day may fall in the previous year's tail
		// overlap, in which case the week resolves forward into this
		// year's week 1.
		prev := d.AddDays(-d.cal.DayOfYear())
		return prev.weekBased()
	case week > d.weekCount(jan1Offset):
		// Overlap at the end of the year: week 1 of the next year.
		return d.cal.Year() + 1, 1, true
	default:
		return d.cal.Year(), week, true
	}
}

// WeekOfWeekBasedYear returns the date's week number in the week-based
// year, with no week 0: days of an overlap week take the neighboring
// year's numbering, so every date maps to exactly one (week-based year,
// week) pair. ok is false when the calendar has no week cycle.
func (d Date[C]) WeekOfWeekBasedYear() (week int, ok bool) {
	_, week, ok = d.weekBased()
	return week, ok
}

// WeekBasedYear returns the year that owns the date's week: the calendar
// year itself, or its neighbor when the date falls in an overlap week. ok
// is false when the calendar has no week cycle.
func (d Date[C]) WeekBasedYear() (year int, ok bool) {
	year, _, ok = d.weekBased()
	return year, ok
}
