package export

import (
	"fmt"
	"github.com/jung-kurt/gofpdf"
	"io"
	"strconv"
)

// The core fonts are cp1252 only, so amounts carry "EUR" instead of the sign.
func WritePDF(w io.Writer, st Statement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Account statement")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s (%s), %s account", st.Account.Owner, st.Account.Username, st.Account.Type))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", st.GeneratedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(20, 7, "#", "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 12)
	for _, row := range st.Rows {
		pdf.CellFormat(20, 7, strconv.Itoa(row.Index), "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, row.Kind, "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, row.Amount.String()+" EUR", "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	for _, total := range totals(st) {
		pdf.CellFormat(70, 7, total[0], "", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, total[1]+" EUR", "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("unable write pdf: %w", err)
	}

	return nil
}
