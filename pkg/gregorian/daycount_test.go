package gregorian

import "testing"

func TestDayNumberEpoch(t *testing.T) {
	if got := MustNew(1, 1, 1).DayNumber(); got != 1 {
		t.Errorf("DayNumber(0001-01-01) = %d, want 1", got)
	}
	if got := MustNew(1970, 1, 1).DayNumber(); got != 719163 {
		t.Errorf("DayNumber(1970-01-01) = %d, want 719163", got)
	}
}

// Round-trip: every valid date survives conversion to its day number and
// back, across leap years, century boundaries and proleptic years.
func TestDayNumberRoundTrip(t *testing.T) {
	years := []int{-400, -101, -100, -1, 0, 1, 4, 100, 400, 1582, 1899, 1900, 1999, 2000, 2023, 2024, 2100, 2400}

	for _, y := range years {
		for m := 1; m <= 12; m++ {
			for _, day := range []int{1, 15, DaysInMonth(y, m)} {
				d := MustNew(y, m, day)
				got := FromDayNumber(d.DayNumber())
				if got != d {
					t.Errorf("round trip of %v came back as %v", d, got)
				}
			}
		}
	}
}

// The encoding is bijective and dense: consecutive day numbers decode to
// consecutive valid dates.
func TestDayNumberDense(t *testing.T) {
	anchors := []Date{
		MustNew(1999, 12, 1),
		MustNew(2099, 12, 1),
		MustNew(0, 2, 1),
		MustNew(-400, 12, 1),
	}

	for _, anchor := range anchors {
		n := anchor.DayNumber()
		prev := anchor
		for i := 1; i <= 200; i++ {
			cur := FromDayNumber(n + i)
			if got := prev.DaysBetween(cur); got != 1 {
				t.Fatalf("DaysBetween(%v, %v) = %d, want 1", prev, cur, got)
			}
			if !IsValid(cur.Year(), cur.Month(), cur.Day()) {
				t.Fatalf("FromDayNumber produced invalid date %v", cur)
			}
			prev = cur
		}
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		start Date
		n     int
		want  Date
	}{
		{MustNew(2024, 2, 28), 1, MustNew(2024, 2, 29)},
		{MustNew(2024, 2, 28), 2, MustNew(2024, 3, 1)},
		{MustNew(2023, 2, 28), 1, MustNew(2023, 3, 1)},
		{MustNew(2023, 12, 31), 1, MustNew(2024, 1, 1)},
		{MustNew(2024, 1, 1), -1, MustNew(2023, 12, 31)},
		{MustNew(2024, 1, 1), 366, MustNew(2025, 1, 1)},
		{MustNew(1, 1, 1), -1, MustNew(0, 12, 31)},
		{MustNew(2000, 1, 1), 0, MustNew(2000, 1, 1)},
	}

	for _, c := range cases {
		if got := c.start.AddDays(c.n); got != c.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", c.start, c.n, got, c.want)
		}
	}
}

// AddDays is reversible: adding n then -n restores the date, and
// DaysBetween recovers n.
func TestAddDaysReversible(t *testing.T) {
	starts := []Date{
		MustNew(2024, 2, 29),
		MustNew(2000, 1, 1),
		MustNew(0, 6, 15),
		MustNew(-100, 3, 1),
	}
	deltas := []int{0, 1, -1, 27, -27, 365, -365, 146097, -146097, 1000000}

	for _, d := range starts {
		for _, n := range deltas {
			moved := d.AddDays(n)
			if back := moved.AddDays(-n); back != d {
				t.Errorf("%v.AddDays(%d).AddDays(%d) = %v, want %v", d, n, -n, back, d)
			}
			if got := d.DaysBetween(moved); got != n {
				t.Errorf("DaysBetween(%v, %v.AddDays(%d)) = %d, want %d", d, d, n, got, n)
			}
		}
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b Date
		want int
	}{
		{MustNew(2024, 1, 1), MustNew(2024, 12, 31), 365},
		{MustNew(2023, 1, 1), MustNew(2023, 12, 31), 364},
		{MustNew(2024, 3, 1), MustNew(2024, 2, 29), -1},
		{MustNew(2000, 1, 1), MustNew(2400, 1, 1), 146097},
		{MustNew(1, 1, 1), MustNew(1, 1, 1), 0},
	}

	for _, c := range cases {
		if got := c.a.DaysBetween(c.b); got != c.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
