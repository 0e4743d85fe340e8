package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/scanvault/scanvault/internal/entity"
)

// summaryFileName is written into the destination root alongside the
// customer folders.
const summaryFileName = "sync-summary.xlsx"

type summaryRow struct {
	Group   *entity.Group
	Bundles int
	Status  string
	Detail  string
}

// buildSummaryWorkbook returns an XLSX workbook (as bytes) with one row
// per group the sync considered.
func buildSummaryWorkbook(rows []summaryRow) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Sync"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// NewFile starts with a default sheet the report never uses.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Customer ID",
		"Group ID",
		"Documents",
		"Bundles",
		"Status",
		"Detail",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Group.CustomerID)
		write(2, r.Group.ID.String())
		write(3, r.Group.DocumentCount)
		write(4, r.Bundles)
		write(5, r.Status)
		write(6, r.Detail)
	}

	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "B", 38)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "E", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
