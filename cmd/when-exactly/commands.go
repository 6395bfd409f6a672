package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rickb777/period"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/when-exactly/internal/report"
	"github.com/username/when-exactly/pkg/calendar"
)

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <span>",
		Short: "Show the bounds, neighbours and related granules of a span",
		Example: "  when-exactly describe 2025-09-05\n" +
			"  when-exactly describe 2020-W53 -o json\n" +
			"  when-exactly describe now",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseSpan(args[0])
			if err != nil {
				return err
			}

			logger.Debug("Describing span", zap.String("span", span.String()), zap.Stringer("kind", span.Kind()))

			return printReport(cmd, report.Describe(span))
		},
	}
}

func listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <span> <kind>",
		Short: "Enumerate the granules of a kind that overlap a span",
		Example: "  when-exactly list 2020 weeks\n" +
			"  when-exactly list 2025-01 days -o yaml\n" +
			"  when-exactly list 2025-09-05 minutes --limit 10",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseSpan(args[0])
			if err != nil {
				return err
			}
			kind, err := calendar.ParseKind(args[1])
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			listing, err := report.List(span, kind, limit)
			if err != nil {
				logger.Error("Failed to list granules", zap.String("span", span.String()), zap.Error(err))
				return err
			}

			logger.Debug("Listed granules",
				zap.String("span", span.String()),
				zap.Stringer("kind", kind),
				zap.Int("count", listing.Count))

			return printReport(cmd, listing)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many granules (0: no limit)")

	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <span> <kind>",
		Short: "Find the granule of another kind that contains the start of a span",
		Example: "  when-exactly convert 2025-09-05 week\n" +
			"  when-exactly convert 2025-W01 ordinal-day",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseSpan(args[0])
			if err != nil {
				return err
			}
			kind, err := calendar.ParseKind(args[1])
			if err != nil {
				return err
			}

			shift, err := report.Convert(span, kind)
			if err != nil {
				return err
			}

			logger.Debug("Converted span", zap.String("from", shift.From), zap.String("to", shift.To))

			return printReport(cmd, shift)
		},
	}
}

func stepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <span> <n>",
		Short: "Move a span n granules forward, or backward when n is negative",
		Example: "  when-exactly step 2025-01 13\n" +
			"  when-exactly step 2021-W01 -- -1",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseSpan(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[1], err)
			}

			shift, err := report.Step(span, n)
			if err != nil {
				logger.Error("Failed to step span", zap.String("span", span.String()), zap.Int("n", n), zap.Error(err))
				return err
			}

			logger.Debug("Stepped span", zap.String("from", shift.From), zap.String("to", shift.To), zap.Int("n", n))

			return printReport(cmd, shift)
		},
	}
}

func addCmd() *cobra.Command {
	var by period.Period
	var subtract bool

	cmd := &cobra.Command{
		Use:   "add <moment> --by <period>",
		Short: "Add an ISO-8601 period to a moment",
		Long: "Add an ISO-8601 period to a moment. Years and months move the calendar " +
			"fields and clamp the day to the end of the month; weeks, days, hours, " +
			"minutes and seconds are then added as exact offsets.",
		Example: "  when-exactly add 2025-01-31T00:00:00 --by P1M\n" +
			"  when-exactly add 2025-03-01 --by PT1H --sub",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoment(args[0])
			if err != nil {
				return err
			}
			delta, err := calendar.DeltaFromPeriod(by)
			if err != nil {
				return fmt.Errorf("invalid --by: %w", err)
			}

			result, err := report.Add(m, delta, subtract)
			if err != nil {
				logger.Error("Failed to add period", zap.String("moment", m.String()), zap.Stringer("delta", delta), zap.Error(err))
				return err
			}

			logger.Debug("Added period",
				zap.String("moment", result.Moment),
				zap.String("delta", result.Delta),
				zap.String("result", result.Result))

			return printReport(cmd, result)
		},
	}

	cmd.Flags().Var(&by, "by", "ISO-8601 period, e.g. P1Y2M, P3W or PT90M")
	cmd.Flags().BoolVar(&subtract, "sub", false, "Subtract the period instead of adding it")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

// parseSpan reads the string form of any granule, or "now" for the current second.
func parseSpan(s string) (calendar.Span, error) {
	if strings.EqualFold(strings.TrimSpace(s), "now") {
		return calendar.Snap(calendar.KindSecond, calendar.Now())
	}
	span, err := calendar.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid span: %w", err)
	}
	return span, nil
}

// parseMoment reads a moment, "now", or any granule standing for its start.
func parseMoment(s string) (calendar.Moment, error) {
	if strings.EqualFold(strings.TrimSpace(s), "now") {
		return calendar.Now(), nil
	}
	if m, err := calendar.ParseMoment(s); err == nil {
		return m, nil
	}
	span, err := calendar.Parse(s)
	if err != nil {
		return calendar.Moment{}, fmt.Errorf("invalid moment: %w", err)
	}
	return span.Bounds().Start(), nil
}

func printReport(cmd *cobra.Command, r report.Report) error {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, r)
}
