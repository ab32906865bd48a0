package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// StatementPDF renders an employee's full ledger as a PDF and returns the
// bytes so the transport layer can stream them without touching disk.
func (s *Service) StatementPDF(ctx context.Context, employeeID string) ([]byte, error) {
	name, err := s.store.EmployeeName(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	totals, err := s.store.EmployeeTotals(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 8, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(100, 8, "Reason", "1", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, e := range entries {
		pdf.CellFormat(30, 8, e.Date.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, e.Type, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", e.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(100, 8, e.Reason, "1", 1, "", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %.2f", totals.Bonuses))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", totals.Deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", totals.Net()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
