// Package payslip renders a one-page payslip PDF.
package payslip

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Line is a labelled amount or detail on the payslip.
type Line struct {
	Label string
	Value string
}

type Document struct {
	Title      string
	Period     string
	Details    []Line
	Earnings   []Line
	Deductions []Line
	Additions  []Line
	Net        string
}

// Write renders doc as PDF into w.
func Write(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Period: "+doc.Period)
	pdf.Ln(10)

	for _, l := range doc.Details {
		pdf.Cell(50, 7, l.Label+":")
		pdf.Cell(0, 7, l.Value)
		pdf.Ln(7)
	}

	section(pdf, "Earnings", doc.Earnings)
	section(pdf, "Deductions", doc.Deductions)
	section(pdf, "Additions", doc.Additions)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, "Net Pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, doc.Net, "T", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, heading string, lines []Line) {
	if len(lines) == 0 {
		return
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(170, 8, heading, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(120, 7, l.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, l.Value, "", 1, "R", false, 0, "")
	}
}
