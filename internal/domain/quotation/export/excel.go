package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"obiene/quotation_backend/internal/domain/quotation"
)

const sheet = "Sheet1"

// HistoryWorkbook builds an xlsx workbook with one row per quotation,
// for download from the history view.
func HistoryWorkbook(records []quotation.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Quote Number")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Client")
	f.SetCellValue(sheet, "D1", "Items")
	f.SetCellValue(sheet, "E1", "Total")

	for i, rec := range records {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, rec.QuoteNumber)
		f.SetCellValue(sheet, "B"+row, rec.Date)
		f.SetCellValue(sheet, "C"+row, rec.ClientInfo.Name)
		f.SetCellValue(sheet, "D"+row, len(rec.Items))
		f.SetCellValue(sheet, "E"+row, rec.Total)
	}
	return f, nil
}
