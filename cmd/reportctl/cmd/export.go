package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetrack-backend/internal/app"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/export"
)

var outDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered entries to reporte_<date>.csv",
	Long: `Write the filtered report rows as CSV into --out (default: current
directory). The file is named after today's date in the export timezone.

Example:
  reportctl export --start 2026-03-01 --end 2026-03-31 --out /tmp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ctx, f, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.reports.Query(ctx, f)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		path, err := writeExport(outDir, time.Now(), app.Formatter(s.cfg.Export), rows)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d row(s) to %s\n", len(rows), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&outDir, "out", ".", "directory to write the CSV file into")
	rootCmd.AddCommand(exportCmd)
}

// writeExport renders rows into dir/reporte_<date>.csv, dating the file in
// the formatter's location, and returns the path written.
func writeExport(dir string, now time.Time, formatter export.CSVFormatter, rows []domain.ReportRow) (string, error) {
	if formatter.Location != nil {
		now = now.In(formatter.Location)
	}
	path := filepath.Join(dir, export.FileName(now))

	if err := os.WriteFile(path, formatter.Format(rows), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
