package export

import (
	"fmt"
	"github.com/tealeg/xlsx"
	"io"
)

const (
	movementsSheet = "Movements"
	summarySheet   = "Summary"
)

func WriteXLSX(w io.Writer, st Statement) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(movementsSheet)
	if err != nil {
		return fmt.Errorf("unable add sheet: %w", err)
	}

	row := sheet.AddRow()
	row.AddCell().SetString("#")
	row.AddCell().SetString("Type")
	row.AddCell().SetString("Amount")

	for _, movement := range st.Rows {
		row = sheet.AddRow()
		row.AddCell().SetInt(movement.Index)
		row.AddCell().SetString(movement.Kind)
		row.AddCell().SetFloat(movement.Amount.InexactFloat64())
	}

	summary, err := file.AddSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("unable add sheet: %w", err)
	}

	for _, line := range [][2]string{
		{"Owner", st.Account.Owner},
		{"Username", st.Account.Username},
		{"Account", st.Account.ID},
		{"Generated", st.GeneratedAt.Format("2006-01-02 15:04:05")},
	} {
		row = summary.AddRow()
		row.AddCell().SetString(line[0])
		row.AddCell().SetString(line[1])
	}

	for _, total := range totals(st) {
		row = summary.AddRow()
		row.AddCell().SetString(total[0])
		row.AddCell().SetString(total[1])
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("unable write xlsx: %w", err)
	}

	return nil
}
