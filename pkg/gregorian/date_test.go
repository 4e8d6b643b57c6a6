package gregorian

import (
	"strings"
	"testing"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{0, true},
		{-400, true},
		{-100, false},
		{-4, true},
		{-1, false},
		{1600, true},
		{2100, false},
	}

	for _, c := range cases {
		if got := IsLeapYear(c.year); got != c.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2023, 1, 31},
		{2023, 4, 30},
		{2023, 12, 31},
		{2023, 0, 0},
		{2023, 13, 0},
		{2023, -1, 0},
	}

	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := [][3]int{
		{2024, 2, 29},
		{2023, 2, 28},
		{0, 1, 1},
		{-400, 2, 29},
		{1, 12, 31},
	}
	invalid := [][3]int{
		{2023, 2, 29},
		{2024, 2, 30},
		{2024, 4, 31},
		{2024, 13, 1},
		{2024, 0, 5},
		{2024, 6, 0},
		{2024, 6, -3},
	}

	for _, v := range valid {
		if !IsValid(v[0], v[1], v[2]) {
			t.Errorf("IsValid(%d, %d, %d) = false, want true", v[0], v[1], v[2])
		}
	}
	for _, v := range invalid {
		if IsValid(v[0], v[1], v[2]) {
			t.Errorf("IsValid(%d, %d, %d) = true, want false", v[0], v[1], v[2])
		}
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(2023, 2, 29)
	if err == nil {
		t.Fatal("New(2023, 2, 29) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "2023-2-29 is not a valid gregorian date") {
		t.Errorf("unexpected error message: %v", err)
	}

	if _, err := New(2024, 2, 29); err != nil {
		t.Errorf("New(2024, 2, 29) failed: %v", err)
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    Weekday
	}{
		{2009, 1, 1, Thursday},
		{2010, 1, 1, Friday},
		{2013, 1, 1, Tuesday},
		{2000, 1, 1, Saturday},
		{2000, 2, 29, Tuesday},
		{1970, 1, 1, Thursday},
		{1900, 1, 1, Monday},
		{2024, 12, 25, Wednesday},
		{1, 1, 1, Monday},
	}

	for _, c := range cases {
		d := MustNew(c.y, c.m, c.d)
		if got := d.Weekday(); got != c.want {
			t.Errorf("%v.Weekday() = %v, want %v", d, got, c.want)
		}
	}
}

// Consecutive days cycle through the week in order, including across year
// boundaries and into proleptic years.
func TestWeekdayProgression(t *testing.T) {
	starts := []Date{
		MustNew(1999, 12, 1),
		MustNew(2023, 12, 1),
		MustNew(-1, 12, 1),
	}
	for _, start := range starts {
		prev := start.Weekday()
		for n := 1; n <= 120; n++ {
			d := start.AddDays(n)
			got := d.Weekday()
			want := Weekday((int(prev) + 1) % 7)
			if got != want {
				t.Fatalf("%v.Weekday() = %v, want %v", d, got, want)
			}
			prev = got
		}
	}
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		y, m, d, want int
	}{
		{2023, 1, 1, 1},
		{2023, 2, 1, 32},
		{2023, 12, 31, 365},
		{2024, 12, 31, 366},
		{2024, 3, 1, 61},
		{2023, 3, 1, 60},
	}

	for _, c := range cases {
		d := MustNew(c.y, c.m, c.d)
		if got := d.DayOfYear(); got != c.want {
			t.Errorf("%v.DayOfYear() = %d, want %d", d, got, c.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := MustNew(2024, 6, 1).DaysInYear(); got != 366 {
		t.Errorf("2024 DaysInYear = %d, want 366", got)
	}
	if got := MustNew(2023, 6, 1).DaysInYear(); got != 365 {
		t.Errorf("2023 DaysInYear = %d, want 365", got)
	}
}

// Exactly one of Before, equal, After holds for every pair.
func TestComparisonTrichotomy(t *testing.T) {
	dates := []Date{
		MustNew(-1, 12, 31),
		MustNew(0, 1, 1),
		MustNew(2023, 12, 31),
		MustNew(2024, 1, 1),
		MustNew(2024, 2, 29),
		MustNew(2024, 3, 1),
	}

	for _, a := range dates {
		for _, b := range dates {
			n := 0
			if a.Before(b) {
				n++
			}
			if a == b {
				n++
			}
			if a.After(b) {
				n++
			}
			if n != 1 {
				t.Errorf("trichotomy broken for %v vs %v: %d relations hold", a, b, n)
			}
		}
	}
}
