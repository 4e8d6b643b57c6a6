// Package clock implements wall-clock arithmetic over hour, minute, second
// and millisecond fields. Field additions carry overflow into the next
// coarser unit; overflow past the hour field is returned to the caller as a
// signed day count, since a clock value has no day field. Values are
// immutable; every operation returns a new Local.
package clock

import "fmt"

// Modulus of each clock field.
const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
	millisPerSecond  = 1000
)

// Local is a wall-clock time of day with no zone or offset attached. The
// second field may read 60 so that a leap-second observation can be carried
// as data; this engine does not know when leap seconds occur. Construct
// through NewLocal.
type Local struct {
	hour   int
	minute int
	second int
	milli  float64
}

// IsValid reports whether the fields form a representable clock reading:
// hour 0..23, minute 0..59, second 0..60 inclusive, millisecond in
// [0, 1000).
func IsValid(hour, minute, second int, milli float64) bool {
	return hour >= 0 && hour < hoursPerDay &&
		minute >= 0 && minute < minutesPerHour &&
		second >= 0 && second <= secondsPerMinute &&
		milli >= 0 && milli < millisPerSecond
}

// NewLocal returns the clock reading h:mi:s.ms, or an error if the fields
// are out of range.
func NewLocal(hour, minute, second int, milli float64) (Local, error) {
	if !IsValid(hour, minute, second, milli) {
		return Local{}, fmt.Errorf("%d:%d:%d.%g is not a valid local time", hour, minute, second, milli)
	}
	return Local{hour: hour, minute: minute, second: second, milli: milli}, nil
}

// MustNewLocal is NewLocal for values known valid at compile time. It
// panics on invalid fields.
func MustNewLocal(hour, minute, second int, milli float64) Local {
	t, err := NewLocal(hour, minute, second, milli)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour of day, 0..23.
func (t Local) Hour() int { return t.hour }

// Minute returns the minute of hour, 0..59.
func (t Local) Minute() int { return t.minute }

// Second returns the second of minute, 0..60.
func (t Local) Second() int { return t.second }

// Milli returns the millisecond of second, in [0, 1000).
func (t Local) Milli() float64 { return t.milli }

// MilliOfDay returns the total milliseconds since midnight. It is the
// engine's comparison key and is monotonic within a day; a leap-second
// reading shares its key with the first instant of the following minute.
func (t Local) MilliOfDay() float64 {
	return float64(((t.hour*minutesPerHour+t.minute)*secondsPerMinute+t.second)*millisPerSecond) + t.milli
}

// Before reports whether t is strictly earlier in the day than o.
func (t Local) Before(o Local) bool {
	if t.hour != o.hour {
		return t.hour < o.hour
	}
	if t.minute != o.minute {
		return t.minute < o.minute
	}
	if t.second != o.second {
		return t.second < o.second
	}
	return t.milli < o.milli
}

// After reports whether t is strictly later in the day than o.
func (t Local) After(o Local) bool {
	return o.Before(t)
}

// Local returns the receiver: a Local reading is already canonical. This is
// the capability an offset-bearing clock would implement by dropping its
// offset.
func (t Local) Local() Local { return t }

// String returns the reading as hour:minute:seconds, with the seconds
// field carrying the millisecond fraction.
func (t Local) String() string {
	return fmt.Sprintf("%02d:%02d:%06.3f", t.hour, t.minute, float64(t.second)+t.milli/millisPerSecond)
}
