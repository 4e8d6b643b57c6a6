package chrono

import "github.com/coolbeans/chronos/pkg/clock"

// Clock is the operation table every pluggable clock representation
// supplies. As with Calendar, the type parameter names the representation's
// own concrete type. Local is the one capability with a fixed return type:
// every representation must be able to strip whatever offset or zone
// information it carries and yield the canonical local reading with the
// same hour, minute, second and millisecond fields.
type Clock[C any] interface {
	Hour() int
	Minute() int
	Second() int
	Milli() float64
	MilliOfDay() float64
	AddHours(n int) (days int, out C)
	AddMinutes(n int) (days int, out C)
	AddSeconds(n int) (days int, out C)
	AddMillis(ms float64) (days int, out C)
	MillisBetween(o C) float64
	Until(o C) (hours, minutes, seconds int, millis float64)
	AddPeriod(hours, minutes, seconds int, millis float64) (days int, out C)
	Before(o C) bool
	After(o C) bool
	Local() clock.Local
}

// TimePeriod is the symbolic hour/minute/second/millisecond difference
// between two Times of the same clock representation.
type TimePeriod struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  float64
}

// Time pairs a clock value with its operation table. The zero value is
// unusable; construct with NewTime or LocalTime.
type Time[C Clock[C]] struct {
	clk C
}

// NewTime wraps a concrete clock value.
func NewTime[C Clock[C]](clk C) Time[C] {
	return Time[C]{clk: clk}
}

// Clock returns the wrapped clock value.
func (t Time[C]) Clock() C { return t.clk }

// Hour returns the hour of day.
func (t Time[C]) Hour() int { return t.clk.Hour() }

// Minute returns the minute of hour.
func (t Time[C]) Minute() int { return t.clk.Minute() }

// Second returns the second of minute.
func (t Time[C]) Second() int { return t.clk.Second() }

// Milli returns the millisecond of second.
func (t Time[C]) Milli() float64 { return t.clk.Milli() }

// MilliOfDay returns the total milliseconds since midnight.
func (t Time[C]) MilliOfDay() float64 { return t.clk.MilliOfDay() }

// AddHours returns the time n hours later and the whole days crossed.
func (t Time[C]) AddHours(n int) (days int, out Time[C]) {
	days, t.clk = t.clk.AddHours(n)
	return days, t
}

// AddMinutes returns the time n minutes later and the whole days crossed.
func (t Time[C]) AddMinutes(n int) (days int, out Time[C]) {
	days, t.clk = t.clk.AddMinutes(n)
	return days, t
}

// AddSeconds returns the time n seconds later and the whole days crossed.
func (t Time[C]) AddSeconds(n int) (days int, out Time[C]) {
	days, t.clk = t.clk.AddSeconds(n)
	return days, t
}

// AddMillis returns the time ms milliseconds later and the whole days
// crossed.
func (t Time[C]) AddMillis(ms float64) (days int, out Time[C]) {
	days, t.clk = t.clk.AddMillis(ms)
	return days, t
}

// MillisBetween returns the exact signed millisecond difference to o.
func (t Time[C]) MillisBetween(o Time[C]) float64 {
	return t.clk.MillisBetween(o.clk)
}

// Period returns the symbolic difference from t to o. Re-adding it to t
// with Add reproduces o.
func (t Time[C]) Period(o Time[C]) TimePeriod {
	hours, minutes, seconds, millis := t.clk.Until(o.clk)
	return TimePeriod{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis}
}

// Add applies a symbolic period, coarsest field first, and returns the
// whole days crossed.
func (t Time[C]) Add(p TimePeriod) (days int, out Time[C]) {
	days, t.clk = t.clk.AddPeriod(p.Hours, p.Minutes, p.Seconds, p.Millis)
	return days, t
}

// Before reports whether t is strictly earlier in the day than o.
func (t Time[C]) Before(o Time[C]) bool { return t.clk.Before(o.clk) }

// After reports whether t is strictly later in the day than o.
func (t Time[C]) After(o Time[C]) bool { return t.clk.After(o.clk) }

// Local returns the canonical local reading for this time, with any
// offset or zone information stripped.
func (t Time[C]) Local() clock.Local { return t.clk.Local() }

// LocalTime constructs a Time on the plain local clock. It fails when the
// fields are out of range.
func LocalTime(hour, minute, second int, milli float64) (Time[clock.Local], error) {
	l, err := clock.NewLocal(hour, minute, second, milli)
	if err != nil {
		return Time[clock.Local]{}, err
	}
	return NewTime(l), nil
}
