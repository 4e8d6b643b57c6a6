package gregorian

import (
	"fmt"

	"github.com/coolbeans/chronos/pkg/mathx"
)

// Period is the symbolic difference between two dates in years, months and
// days. A period is anchored: adding "one month" spans a different number
// of days depending on the date it is added to, so Period(a, b) followed by
// Add reproduces b from a, but the components themselves are not a fixed
// duration.
type Period struct {
	Years  int
	Months int
	Days   int
}

// String returns the period in a compact y/m/d form.
func (p Period) String() string {
	return fmt.Sprintf("%dy %dm %dd", p.Years, p.Months, p.Days)
}

// firstValid steps the day backward until the fields name a real date.
// Month arithmetic can only overshoot a month's end by at most three days
// (day 31 landing in a 28-day February), so the loop runs at most three
// times.
func firstValid(year, month, day int) Date {
	for !IsValid(year, month, day) {
		day--
	}
	return Date{year: year, month: month, day: day}
}

// AddMonths returns the date n months after d, clamping the day of month
// to the target month's length when needed. AddMonths(0) is the identity,
// since d is valid already.
func (d Date) AddMonths(n int) Date {
	total := d.year*12 + (d.month - 1) + n
	year := mathx.FloorDiv(total, 12)
	month := total - year*12 + 1
	return firstValid(year, month, d.day)
}

// AddYears returns the date n years after d, clamping February 29 to
// February 28 when the target year is not a leap year.
func (d Date) AddYears(n int) Date {
	return firstValid(d.year+n, d.month, d.day)
}

// Period returns the symbolic difference from d to o: the largest whole
// number of years that does not overshoot o, then the largest whole months
// on the year-adjusted date, then exact days. All three components share
// the sign of the difference. The defining contract is
// d.Add(d.Period(o)) == o; the reverse direction does not hold in general
// because month and year addition clamp.
func (d Date) Period(o Date) Period {
	years := o.year - d.year
	if o.Before(d) {
		if cur := d.AddYears(years); cur.Before(o) {
			years++
		}
		atYear := d.AddYears(years)
		months := (o.year-atYear.year)*12 + o.month - atYear.month
		if cur := atYear.AddMonths(months); cur.Before(o) {
			months++
		}
		atMonth := atYear.AddMonths(months)
		return Period{Years: years, Months: months, Days: atMonth.DaysBetween(o)}
	}
	if cur := d.AddYears(years); cur.After(o) {
		years--
	}
	atYear := d.AddYears(years)
	months := (o.year-atYear.year)*12 + o.month - atYear.month
	if cur := atYear.AddMonths(months); cur.After(o) {
		months--
	}
	atMonth := atYear.AddMonths(months)
	return Period{Years: years, Months: months, Days: atMonth.DaysBetween(o)}
}

// Add applies the period to d: years first, then months, then days. The
// order matters because each of the first two stages may clamp the day of
// month.
func (d Date) Add(p Period) Date {
	return d.AddYears(p.Years).AddMonths(p.Months).AddDays(p.Days)
}

// Until is the flattened form of Period used by the generic date
// abstraction's operation table.
func (d Date) Until(o Date) (years, months, days int) {
	p := d.Period(o)
	return p.Years, p.Months, p.Days
}

// AddPeriod is the flattened form of Add used by the generic date
// abstraction's operation table.
func (d Date) AddPeriod(years, months, days int) Date {
	return d.Add(Period{Years: years, Months: months, Days: days})
}
