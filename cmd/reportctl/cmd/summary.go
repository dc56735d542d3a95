package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/export"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals per worker and per project",
	Long: `Print the number of entries and tracked time for the filtered range,
broken down by worker and by project. Projects with an hourly rate also show
the estimated cost.

Example:
  reportctl summary --start 2026-03-01 --end 2026-03-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ctx, f, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.reports.Summarize(ctx, f)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(w io.Writer, s *domain.Summary) {
	fmt.Fprintf(w, "Entries: %d\n", s.TotalEntries)
	fmt.Fprintf(w, "Total:   %s (%.2f h)\n", export.FormatDuration(&s.TotalMinutes), s.TotalHours)

	if len(s.ByUser) > 0 {
		fmt.Fprintf(w, "\n%-30s  %8s  %10s\n", "WORKER", "ENTRIES", "TIME")
		fmt.Fprintln(w, strings.Repeat("-", 52))
		for _, u := range s.ByUser {
			fmt.Fprintf(w, "%-30s  %8d  %10s\n",
				truncate(u.User.DisplayName(), 30), u.EntriesCount, export.FormatDuration(&u.TotalMinutes))
		}
	}

	if len(s.ByProject) > 0 {
		fmt.Fprintf(w, "\n%-30s  %8s  %10s  %12s\n", "PROJECT", "ENTRIES", "TIME", "COST")
		fmt.Fprintln(w, strings.Repeat("-", 66))
		for _, p := range s.ByProject {
			cost := "-"
			if p.Project.HourlyRate != nil {
				cost = p.EstimatedCost.StringFixed(2)
			}
			fmt.Fprintf(w, "%-30s  %8d  %10s  %12s\n",
				truncate(p.Project.Name, 30), p.EntriesCount, export.FormatDuration(&p.TotalMinutes), cost)
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-2]) + ".."
}
