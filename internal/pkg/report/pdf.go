package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	rowHeight    = 8.0
	lineHeight   = 4.5
	cellPadding  = 2.0
	margin       = 12.0
	headerSize   = 10.0
	bodySize     = 9.0
	titleSize    = 16.0
	sectionSize  = 13.0
	idColumnFrac = 0.06
)

// PDF renders the report as a paginated US Letter document
func PDF(in Input) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(in.Title(), true)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 12, tr(in.Title()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeTable(pdf, tr, "Internships", in.InternshipHeader(), in.InternshipRows())
	pdf.Ln(6)
	writeTable(pdf, tr, "Projects", in.ProjectHeader(), in.ProjectRows())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, section string, header []string, rows [][]string) {
	widths := columnWidths(pdf, len(header))

	ensureRoom(pdf, 3*rowHeight)
	pdf.SetFont("Helvetica", "B", sectionSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, section, "", 1, "L", false, 0, "")

	drawHeader(pdf, tr, header, widths)

	pdf.SetFont("Helvetica", "", bodySize)
	for _, row := range rows {
		cells := make([][]string, len(row))
		lines := 1
		for i, cell := range row {
			cells[i] = wrap(pdf, tr(cell), widths[i])
			if len(cells[i]) > lines {
				lines = len(cells[i])
			}
		}
		h := rowHeightFor(lines)

		if ensureRoom(pdf, h) {
			drawHeader(pdf, tr, header, widths)
			pdf.SetFont("Helvetica", "", bodySize)
		}
		drawRow(pdf, cells, widths, h)
	}
}

// drawRow draws one bordered row of height h with each cell's lines centred vertically
func drawRow(pdf *fpdf.Fpdf, cells [][]string, widths []float64, h float64) {
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)

	x, y := pdf.GetXY()
	for i, lines := range cells {
		pdf.Rect(x, y, widths[i], h, "FD")
		top := y + (h-float64(len(lines))*lineHeight)/2
		for k, line := range lines {
			pdf.SetXY(x, top+float64(k)*lineHeight)
			pdf.CellFormat(widths[i], lineHeight, line, "", 0, "C", false, 0, "")
		}
		x += widths[i]
	}
	pdf.SetXY(margin, y+h)
}

// rowHeightFor is the height of a row whose tallest cell has n lines
func rowHeightFor(n int) float64 {
	h := float64(n)*lineHeight + cellPadding
	if h < rowHeight {
		return rowHeight
	}
	return h
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, header []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", headerSize)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetDrawColor(0, 0, 0)
	for i, h := range header {
		pdf.CellFormat(widths[i], rowHeight, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// ensureRoom starts a new page when fewer than h millimetres remain and reports whether it did
func ensureRoom(pdf *fpdf.Fpdf, h float64) bool {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+h <= pageH-2*margin {
		return false
	}
	pdf.AddPage()
	return true
}

// columnWidths gives the ID column a narrow slot and splits the rest evenly
func columnWidths(pdf *fpdf.Fpdf, n int) []float64 {
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*margin
	idW := usable * idColumnFrac
	rest := (usable - idW) / float64(n-1)

	widths := make([]float64, n)
	widths[0] = idW
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

// wrap splits s into lines that fit in width w at the current font.
// Words longer than a line are broken; an empty cell is one blank line.
func wrap(pdf *fpdf.Fpdf, s string, w float64) []string {
	if s == "" {
		return []string{""}
	}
	split := pdf.SplitLines([]byte(s), w-cellPadding)
	if len(split) == 0 {
		return []string{""}
	}
	lines := make([]string, len(split))
	for i, l := range split {
		lines[i] = string(l)
	}
	return lines
}
