package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"mskn-backend/internal/timeutil"
)

func (r *Report) subject() string {
	if r.OwnerID != "" {
		return "Owner " + r.OwnerID
	}
	return "Property " + r.PropertyID
}

func (r *Report) rows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	return [][]string{
		{"Total income", money(r.TotalIncome)},
		{"Rent collected", money(r.RentCollected)},
		{"Maintenance", money(r.Expenses.Maintenance)},
		{"Utilities", money(r.Expenses.Utilities)},
		{"Taxes", money(r.Expenses.Taxes)},
		{"Insurance", money(r.Expenses.Insurance)},
		{"Other", money(r.Expenses.Other)},
		{"Total expenses", money(r.TotalExpenses)},
		{"Net income", money(r.NetIncome)},
	}
}

// PDF renders the report as a one page A4 document.
func (r *Report) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Financial Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s - period: %s", r.subject(), r.Period), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", r.GeneratedDate.Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, row := range r.rows() {
		pdf.CellFormat(120, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// CSV renders the report as item,amount rows under a header.
func (r *Report) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := append([][]string{
		{"report", r.ID},
		{"period", r.Period},
		{"item", "amount"},
	}, r.rows()...)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
