package main

import (
	"fmt"
	"os"

	"github.com/coolbeans/chronos/pkg/chrono"
	"github.com/coolbeans/chronos/pkg/clock"
	"github.com/coolbeans/chronos/pkg/gregorian"
	"github.com/coolbeans/chronos/pkg/weekrule"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chronos",
		Short: "Calendar and clock arithmetic",
		Long: `Chronos performs calendar-aware date arithmetic and wall-clock
arithmetic on the proleptic Gregorian calendar.

It computes weekdays, ISO week numbers, exact day differences,
symbolic year/month/day periods between dates, and the clock
equivalents for times of day.

Dates are written as year-month-day (2024-2-29); times of day as
hour:minute:second with optional fractional seconds (23:30:15.25).`,
		Version: version,
	}

	rootCmd.AddCommand(weekdayCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(leapCmd())
	rootCmd.AddCommand(timeCmd())
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseDate reads a year-month-day argument. Full ISO-8601 text handling
// is a separate concern; the CLI only splits integer fields.
func parseDate(arg string) (chrono.Date[gregorian.Date], error) {
	var y, m, d int
	if _, err := fmt.Sscanf(arg, "%d-%d-%d", &y, &m, &d); err != nil {
		return chrono.Date[gregorian.Date]{}, fmt.Errorf("cannot parse date %q: want year-month-day", arg)
	}
	return chrono.Gregorian(y, m, d)
}

// parseTime reads an hour:minute:second argument, with the seconds field
// optionally fractional.
func parseTime(arg string) (chrono.Time[clock.Local], error) {
	var h, mi int
	var sec float64
	if _, err := fmt.Sscanf(arg, "%d:%d:%f", &h, &mi, &sec); err != nil {
		return chrono.Time[clock.Local]{}, fmt.Errorf("cannot parse time %q: want hour:minute:second", arg)
	}
	s := int(sec)
	return chrono.LocalTime(h, mi, s, (sec-float64(s))*1000)
}

func weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday [date]",
		Short: "Print the day of week for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			wd, _ := d.Weekday()
			fmt.Printf("%s is a %s\n", d.Calendar(), wd)
			return nil
		},
	}
}

func weekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Print week numbering for a date",
		Long: `Print the week-of-year, week-based-year week and week-based year
for a date. The default is the ISO-8601 rule (weeks start Monday,
week 1 holds at least 4 January days); use --rule to number weeks
under a different regional rule, and --rules-dir to load rule
descriptors from YAML files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleName, _ := cmd.Flags().GetString("rule")
			rulesDir, _ := cmd.Flags().GetString("rules-dir")

			d, err := parseDate(args[0])
			if err != nil {
				return err
			}

			registry, err := openRegistry(rulesDir)
			if err != nil {
				return err
			}
			rule, ok := registry.Get(ruleName)
			if !ok {
				return fmt.Errorf("unknown week rule %q, use 'chronos rules' to list", ruleName)
			}
			d = d.WithWeekRule(rule.WeekRule())

			woy, _ := d.WeekOfYear()
			week, _ := d.WeekOfWeekBasedYear()
			wby, _ := d.WeekBasedYear()

			fmt.Printf("Date:            %s\n", d.Calendar())
			fmt.Printf("Rule:            %s (%s)\n", rule.Name, rule.Region)
			fmt.Printf("Week of year:    %d\n", woy)
			if woy == 0 {
				fmt.Println("                 (overlap week: belongs to the previous year)")
			}
			fmt.Printf("Week-based week: W%02d\n", week)
			fmt.Printf("Week-based year: %d\n", wby)
			return nil
		},
	}
	cmd.Flags().String("rule", "iso", "Week rule to number weeks under")
	cmd.Flags().String("rules-dir", "", "Directory of YAML week-rule descriptors")
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [date]",
		Short: "Add days, months and years to a date",
		Long: `Add a signed number of days, months and years to a date. Years are
applied first, then months, then days; month and year addition clamp
the day of month when the target month is shorter.

Examples:
  chronos add 2024-1-31 --months 1
  chronos add 2024-2-29 --years 1 --days 1
  chronos add 2023-6-15 --days -90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			months, _ := cmd.Flags().GetInt("months")
			years, _ := cmd.Flags().GetInt("years")

			d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			got := d.Add(chrono.Period{Years: years, Months: months, Days: days})
			fmt.Println(got.Calendar())
			return nil
		},
	}
	cmd.Flags().Int("days", 0, "Days to add (may be negative)")
	cmd.Flags().Int("months", 0, "Months to add (may be negative)")
	cmd.Flags().Int("years", 0, "Years to add (may be negative)")
	return cmd
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Print the period and exact day count between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseDate(args[0])
			if err != nil {
				return err
			}
			b, err := parseDate(args[1])
			if err != nil {
				return err
			}

			p := a.Period(b)
			fmt.Printf("Period:     %d years, %d months, %d days\n", p.Years, p.Months, p.Days)
			fmt.Printf("Exact days: %d\n", a.DaysBetween(b))
			return nil
		},
	}
}

func leapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap [year]",
		Short: "Report whether a year is a leap year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var year int
			if _, err := fmt.Sscanf(args[0], "%d", &year); err != nil {
				return fmt.Errorf("cannot parse year %q", args[0])
			}
			if gregorian.IsLeapYear(year) {
				fmt.Printf("%d is a leap year (366 days)\n", year)
			} else {
				fmt.Printf("%d is not a leap year (365 days)\n", year)
			}
			return nil
		},
	}
}

func timeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Wall-clock arithmetic",
	}
	cmd.AddCommand(timeAddCmd())
	cmd.AddCommand(timeDiffCmd())
	return cmd
}

func timeAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [time]",
		Short: "Add hours, minutes, seconds and milliseconds to a time of day",
		Long: `Add signed amounts to a time of day. Overflow carries field to field,
and overflow past midnight is reported as a signed day count.

Examples:
  chronos time add 23:30:00 --hours 1
  chronos time add 12:00:00 --seconds -90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := cmd.Flags().GetInt("hours")
			minutes, _ := cmd.Flags().GetInt("minutes")
			seconds, _ := cmd.Flags().GetInt("seconds")
			millis, _ := cmd.Flags().GetFloat64("millis")

			tm, err := parseTime(args[0])
			if err != nil {
				return err
			}
			days, got := tm.Add(chrono.TimePeriod{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis})
			fmt.Println(got.Local())
			if days != 0 {
				fmt.Printf("Day overflow: %+d\n", days)
			}
			return nil
		},
	}
	cmd.Flags().Int("hours", 0, "Hours to add (may be negative)")
	cmd.Flags().Int("minutes", 0, "Minutes to add (may be negative)")
	cmd.Flags().Int("seconds", 0, "Seconds to add (may be negative)")
	cmd.Flags().Float64("millis", 0, "Milliseconds to add (may be negative)")
	return cmd
}

func timeDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Print the period and exact millisecond count between two times",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseTime(args[0])
			if err != nil {
				return err
			}
			b, err := parseTime(args[1])
			if err != nil {
				return err
			}

			p := a.Period(b)
			fmt.Printf("Period:       %d hours, %d minutes, %d seconds, %g ms\n", p.Hours, p.Minutes, p.Seconds, p.Millis)
			fmt.Printf("Exact millis: %g\n", a.MillisBetween(b))
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the known week-numbering rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesDir, _ := cmd.Flags().GetString("rules-dir")

			registry, err := openRegistry(rulesDir)
			if err != nil {
				return err
			}
			fmt.Printf("%-14s %-10s %-13s %s\n", "NAME", "FIRST DAY", "MINIMAL DAYS", "REGION")
			for _, rule := range registry.List() {
				fmt.Printf("%-14s %-10s %-13d %s\n", rule.Name, rule.FirstDay, rule.MinimalDays, rule.Region)
			}
			return nil
		},
	}
	cmd.Flags().String("rules-dir", "", "Directory of YAML week-rule descriptors")
	return cmd
}

func openRegistry(dir string) (*weekrule.Registry, error) {
	if dir == "" {
		return weekrule.NewRegistry(), nil
	}
	registry, err := weekrule.NewRegistryWithDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("loading week rules: %w", err)
	}
	return registry, nil
}
