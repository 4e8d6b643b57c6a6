// Package weekrule provides a pluggable registry of named week-numbering
// rules. A rule is the small configuration record the generic date
// abstraction numbers weeks with: which weekday opens a week and how many
// days of a new year its first week must contain. Regions disagree on both,
// so rules are data, loadable from YAML descriptor files, not code.
package weekrule

import (
	"fmt"
	"strings"

	"github.com/coolbeans/chronos/pkg/chrono"
	"github.com/coolbeans/chronos/pkg/gregorian"
)

// Rule is a named week-numbering rule as it appears in a YAML descriptor
// file.
type Rule struct {
	// Name identifies the rule, e.g. "iso" or "us".
	Name string `yaml:"name"`
	// Region is a free-form label for where the rule applies.
	Region string `yaml:"region"`
	// FirstDay is the weekday a week starts on, by English name.
	FirstDay string `yaml:"first_day"`
	// MinimalDays is the least number of days of a year that must fall in
	// a week for it to count as the year's first week, 1 through 7.
	MinimalDays int `yaml:"minimal_days"`
}

var weekdayByName = map[string]gregorian.Weekday{
	"monday":    gregorian.Monday,
	"tuesday":   gregorian.Tuesday,
	"wednesday": gregorian.Wednesday,
	"thursday":  gregorian.Thursday,
	"friday":    gregorian.Friday,
	"saturday":  gregorian.Saturday,
	"sunday":    gregorian.Sunday,
}

// Validate checks the rule's fields without converting it.
func (r *Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule has no name")
	}
	if _, ok := weekdayByName[strings.ToLower(r.FirstDay)]; !ok {
		return fmt.Errorf("rule %q: unknown weekday %q", r.Name, r.FirstDay)
	}
	if r.MinimalDays < 1 || r.MinimalDays > 7 {
		return fmt.Errorf("rule %q: minimal_days %d out of range 1..7", r.Name, r.MinimalDays)
	}
	return nil
}

// WeekRule converts the descriptor to the engine's week rule. The rule
// must be valid.
func (r *Rule) WeekRule() chrono.WeekRule {
	return chrono.WeekRule{
		FirstDay:    weekdayByName[strings.ToLower(r.FirstDay)],
		MinimalDays: r.MinimalDays,
	}
}

// builtins are the rules every registry starts with, so week numbering
// works with no descriptor files at all.
func builtins() []*Rule {
	return []*Rule{
		{Name: "iso", Region: "ISO 8601", FirstDay: "monday", MinimalDays: 4},
		{Name: "us", Region: "United States", FirstDay: "sunday", MinimalDays: 1},
		{Name: "middle-east", Region: "Middle East", FirstDay: "saturday", MinimalDays: 1},
	}
}
