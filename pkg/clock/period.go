package clock

import (
	"fmt"
	"math"

	"github.com/coolbeans/chronos/pkg/mathx"
)

// Period is the symbolic difference between two clock readings. Like the
// calendar period it is anchored: Add(Period(a, b)) applied to a yields b,
// but the components are not a duration independent of a.
type Period struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  float64
}

// String returns the period in a compact h/m/s/ms form.
func (p Period) String() string {
	return fmt.Sprintf("%dh %dm %ds %gms", p.Hours, p.Minutes, p.Seconds, p.Millis)
}

// AddHours returns the reading n hours later (earlier, for negative n) and
// the signed number of whole days the addition crossed.
func (t Local) AddHours(n int) (days int, out Local) {
	if n == 0 {
		return 0, t
	}
	days, hour := mathx.AddWithCarry(hoursPerDay, n, t.hour)
	t.hour = hour
	return days, t
}

// AddMinutes returns the reading n minutes later and the day overflow.
func (t Local) AddMinutes(n int) (days int, out Local) {
	if n == 0 {
		return 0, t
	}
	carry, minute := mathx.AddWithCarry(minutesPerHour, n, t.minute)
	t.minute = minute
	return t.AddHours(carry)
}

// AddSeconds returns the reading n seconds later and the day overflow. A
// leap-second reading (second 60) is renormalized into the next minute by
// any non-zero addition.
func (t Local) AddSeconds(n int) (days int, out Local) {
	if n == 0 {
		return 0, t
	}
	carry, second := mathx.AddWithCarry(secondsPerMinute, n, t.second)
	t.second = second
	return t.AddMinutes(carry)
}

// AddMillis returns the reading ms milliseconds later and the day overflow.
func (t Local) AddMillis(ms float64) (days int, out Local) {
	if ms == 0 {
		return 0, t
	}
	carry, milli := mathx.AddFloatWithCarry(millisPerSecond, ms, t.milli)
	t.milli = milli
	return t.AddSeconds(carry)
}

// MillisBetween returns the exact signed millisecond difference from t to
// o: positive when o is later in the day.
func (t Local) MillisBetween(o Local) float64 {
	return o.MilliOfDay() - t.MilliOfDay()
}

// Period returns the symbolic difference from t to o, decomposed greedily
// into whole hours, then minutes, then seconds, with the millisecond
// remainder. All components share the sign of the difference, and
// t.Add(t.Period(o)) lands exactly on o within the same day.
func (t Local) Period(o Local) Period {
	diff := t.MillisBetween(o)
	hours := math.Trunc(diff / (minutesPerHour * secondsPerMinute * millisPerSecond))
	diff -= hours * minutesPerHour * secondsPerMinute * millisPerSecond
	minutes := math.Trunc(diff / (secondsPerMinute * millisPerSecond))
	diff -= minutes * secondsPerMinute * millisPerSecond
	seconds := math.Trunc(diff / millisPerSecond)
	diff -= seconds * millisPerSecond
	return Period{
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
		Millis:  diff,
	}
}

// Add applies the period to t, coarsest field first, and returns the day
// overflow accumulated across the stages.
func (t Local) Add(p Period) (days int, out Local) {
	d1, out := t.AddHours(p.Hours)
	d2, out := out.AddMinutes(p.Minutes)
	d3, out := out.AddSeconds(p.Seconds)
	d4, out := out.AddMillis(p.Millis)
	return d1 + d2 + d3 + d4, out
}

// Until is the flattened form of Period used by the generic time
// abstraction's operation table.
func (t Local) Until(o Local) (hours, minutes, seconds int, millis float64) {
	p := t.Period(o)
	return p.Hours, p.Minutes, p.Seconds, p.Millis
}

// AddPeriod is the flattened form of Add used by the generic time
// abstraction's operation table.
func (t Local) AddPeriod(hours, minutes, seconds int, millis float64) (days int, out Local) {
	return t.Add(Period{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis})
}
