package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"awaaz/internal/domain"
)

const sheetName = "Signatures"

// WriteXLSX renders a petition's signatures as an Excel workbook and streams
// it to w. The header row is bold with a frozen pane so it stays visible
// while scrolling.
func WriteXLSX(w io.Writer, petitionTitle string, signatures []domain.Signature) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(columns))
		_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", boldStyle)
	}
	_ = f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})

	for i := range signatures {
		s := &signatures[i]
		row := []interface{}{
			s.SignerName,
			s.Constituency,
			s.Comment,
			s.SignedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 28)
	_ = f.SetColWidth(sheetName, "B", "B", 22)
	_ = f.SetColWidth(sheetName, "C", "C", 48)
	_ = f.SetColWidth(sheetName, "D", "D", 22)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("streaming workbook %q: %w", petitionTitle, err)
	}
	return nil
}
