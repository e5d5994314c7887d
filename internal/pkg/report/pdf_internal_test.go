package report

import "github.com/go-pdf/fpdf"

func newTestDoc() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", bodySize)
	return doc
}
