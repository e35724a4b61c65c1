package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfNameWidth  = 45.0
	pdfShiftWidth = 45.0
	pdfRowHeight  = 8.0
)

// PDF renders the table in landscape A4 with the core Helvetica font. Text
// outside Latin-1 is replaced by the translator, so names in other scripts
// are better exported as csv or xlsx.
func PDF(t Table, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(14)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	breakCols := len(t.Header) - 2
	breakWidth := 0.0
	if breakCols > 0 {
		breakWidth = (pageWidth - left - right - pdfNameWidth - pdfShiftWidth) / float64(breakCols)
	}
	width := func(col int) float64 {
		switch col {
		case 0:
			return pdfNameWidth
		case 1:
			return pdfShiftWidth
		default:
			return breakWidth
		}
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range t.Header {
		pdf.CellFormat(width(i), pdfRowHeight, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range t.Rows {
		for i, v := range row {
			pdf.CellFormat(width(i), pdfRowHeight, tr(v), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
