package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rabitt1ove/freedays"
)

// weekendArgs returns the two weekend day names from args or the config.
func (a *app) weekendArgs(args []string) (string, string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return a.cfg.Weekend[0], a.cfg.Weekend[1]
}

func remainingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remaining",
		Short: "List holidays still ahead this year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			return a.printDays(cmd.OutOrStdout(), c.RemainingHolidays())
		},
	}
}

func passedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passed",
		Short: "List holidays already behind this year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			return a.printDays(cmd.OutOrStdout(), c.PassedHolidays())
		},
	}
}

func weekendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weekend [day1 day2]",
		Short: "List holidays that fall on weekend days",
		Long:  "List holidays that fall on weekend days. Day names default to the configured weekend (Sat Sun).",
		Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), noSingleArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			day1, day2 := a.weekendArgs(args)
			return a.printDays(cmd.OutOrStdout(), c.WeekendHolidays(day1, day2))
		},
	}
}

func workingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "working [day1 day2]",
		Short: "Count holidays that fall on working days",
		Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), noSingleArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			day1, day2 := a.weekendArgs(args)
			return a.printValue(cmd.OutOrStdout(), c.WorkingDayHolidays(day1, day2))
		},
	}
}

func nextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next holiday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			next, ok := c.NextHoliday()
			if !ok {
				a.logger.Info("country has no holidays", zap.String("country", c.Country()))
				return a.printDays(cmd.OutOrStdout(), []freedays.DayInfo{})
			}
			return a.printDays(cmd.OutOrStdout(), []freedays.DayInfo{next})
		},
	}
}

func allCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every holiday of the year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			return a.printStrings(cmd.OutOrStdout(), c.AllHolidays())
		},
	}
}

// counts is the JSON shape of the count command.
type counts struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
	Passed    int `json:"passed"`
	Weekend   int `json:"weekend"`
	Working   int `json:"working"`
}

func countCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show holiday counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			day1, day2 := a.weekendArgs(nil)
			n := counts{
				Total:     c.CountHolidays(),
				Remaining: c.CountRemainingHolidays(),
				Passed:    c.CountPassedHolidays(),
				Weekend:   c.CountWeekendHolidays(day1, day2),
				Working:   c.WorkingDayHolidays(day1, day2),
			}
			if a.asJSON {
				return a.printValue(cmd.OutOrStdout(), n)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "total: %d\n", n.Total)
			fmt.Fprintf(w, "remaining: %d\n", n.Remaining)
			fmt.Fprintf(w, "passed: %d\n", n.Passed)
			fmt.Fprintf(w, "weekend: %d\n", n.Weekend)
			fmt.Fprintf(w, "working: %d\n", n.Working)
			return nil
		},
	}
}

func isHolidayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "is-holiday YYYY-MM-DD",
		Short: "Report whether a date is a holiday (the year is ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator()
			if err != nil {
				return err
			}
			ok, err := c.IsHoliday(freedays.ISODate(args[0]))
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			return a.printValue(cmd.OutOrStdout(), ok)
		},
	}
}

func countriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the country codes of the holiday table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.cfg.Table()
			if err != nil {
				return err
			}
			return a.printStrings(cmd.OutOrStdout(), table.Countries())
		},
	}
}

func noSingleArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("%s takes zero or two day names, got 1", cmd.Name())
	}
	return nil
}
