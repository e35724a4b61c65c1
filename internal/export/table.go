// Package export renders the bookings table into downloadable files.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

const emptyCell = "-"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts a format name case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q, use csv, xlsx or pdf", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FileName follows bookings-YYYY-MM-DD.<ext>
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("bookings-%s.%s", now.Format("2006-01-02"), f)
}

type Table struct {
	Header []string
	Rows   [][]string
}

// BuildTable lays out one row per employee with one column per break, up to
// the larger of the policy's count and the longest booking.
func BuildTable(employees []entity.Employee, shiftName func(id string) string, maxBreaks int) Table {
	columns := maxBreaks
	for _, e := range employees {
		if len(e.Breaks) > columns {
			columns = len(e.Breaks)
		}
	}

	header := []string{"Employee", "Shift"}
	for i := 1; i <= columns; i++ {
		header = append(header, fmt.Sprintf("Break %d", i))
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		row := []string{e.Name, shiftName(e.ShiftID)}
		for i := 0; i < columns; i++ {
			b, ok := e.BreakAt(i)
			if !ok {
				row = append(row, emptyCell)
				continue
			}
			row = append(row, formatBreak(b))
		}
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}
}

func formatBreak(b entity.BreakReservation) string {
	return fmt.Sprintf("%s (%d min)", b.StartTime, b.DurationMinutes)
}

// Render writes the table in the requested format
func Render(format Format, t Table, now time.Time) (*contract.ExportFile, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatCSV:
		data, err = CSV(t)
	case FormatXLSX:
		data, err = XLSX(t)
	case FormatPDF:
		data, err = PDF(t, fmt.Sprintf("Break bookings %s", now.Format("2006-01-02")))
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &contract.ExportFile{
		Name:        format.FileName(now),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}
