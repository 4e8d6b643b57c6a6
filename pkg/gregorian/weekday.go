package gregorian

import "github.com/coolbeans/chronos/pkg/mathx"

// Weekday is a day of the seven-day week in ISO order, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the English name of the weekday.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[w]
}

// Sakamoto's month offsets for the day-of-week congruence.
var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// weekdayOf computes the day of week for y-m-d with Sakamoto's algorithm.
// The congruence yields 0=Sunday..6=Saturday; the leap-day counts use floor
// division so that proleptic years at or below zero come out right too.
func weekdayOf(y, m, d int) Weekday {
	if m < 3 {
		y--
	}
	s := mathx.FloorMod(
		y+mathx.FloorDiv(y, 4)-mathx.FloorDiv(y, 100)+mathx.FloorDiv(y, 400)+sakamoto[m-1]+d,
		7,
	)
	// Shift Sunday from first position to last.
	return Weekday(mathx.FloorMod(s-1, 7))
}
