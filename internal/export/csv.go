// Package export serializes report rows for download.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ContentType is the media type of Format's output.
const ContentType = "text/csv; charset=utf-8"

// FilePrefix names exported files as <prefix>_<date>.csv.
const FilePrefix = "reporte"

// DefaultLabels is the header row, in column order:
// date, start, end, duration, worker, project, task, notes.
var DefaultLabels = []string{
	"Fecha", "Inicio", "Fin", "Duración", "Trabajador", "Proyecto", "Tarea", "Notas",
}

// ColumnCount is the number of columns every row has.
const ColumnCount = 8

const missing = "-"

// CSVFormatter renders report rows as comma-separated text. The header row
// is written as-is; every data cell is wrapped in double quotes with
// embedded quotes doubled. Rows are joined by "\n" with no trailing newline.
type CSVFormatter struct {
	// Location is used to render dates and times. Nil means UTC.
	Location *time.Location
	// Labels overrides DefaultLabels when it has ColumnCount entries.
	Labels []string
}

// Format renders rows into a byte slice.
func (f CSVFormatter) Format(rows []domain.ReportRow) []byte {
	var b strings.Builder
	f.build(&b, rows)
	return []byte(b.String())
}

// Write renders rows into w.
func (f CSVFormatter) Write(w io.Writer, rows []domain.ReportRow) error {
	if _, err := w.Write(f.Format(rows)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func (f CSVFormatter) build(b *strings.Builder, rows []domain.ReportRow) {
	b.WriteString(strings.Join(f.labels(), ","))

	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}

	for _, row := range rows {
		b.WriteByte('\n')
		for i, cell := range f.cells(row, loc) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
}

func (f CSVFormatter) labels() []string {
	if len(f.Labels) == ColumnCount {
		return f.Labels
	}
	return DefaultLabels
}

func (f CSVFormatter) cells(row domain.ReportRow, loc *time.Location) []string {
	start := row.StartTime.In(loc)

	end := missing
	if row.EndTime != nil {
		end = row.EndTime.In(loc).Format("15:04")
	}

	notes := ""
	if row.Notes != nil {
		notes = *row.Notes
	}

	return []string{
		start.Format("02/01/2006"),
		start.Format("15:04"),
		end,
		FormatDuration(row.Duration),
		row.User.DisplayName(),
		row.Project.Name,
		row.Task.Name,
		notes,
	}
}

// FormatDuration renders minutes as "{h}h {m}m". Nil and zero render as "-".
func FormatDuration(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return missing
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

// FileName returns the download name for an export produced on now's date.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", FilePrefix, now.Format(time.DateOnly))
}
