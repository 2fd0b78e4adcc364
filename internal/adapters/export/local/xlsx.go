package local

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	entriesSheet = "Journal Entries"
	summarySheet = "Summary"
)

// renderXLSX writes the entries sheet followed by a summary sheet.
func renderXLSX(meta gateway.ExportMeta, rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headers := []string{"Entry ID", "Date", "Description", "Debit Account", "Credit Account", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(entriesSheet, cell, h)
	}

	total := decimal.Zero
	for i, row := range rows {
		r := i + 2
		amount, _ := row.Amount.Float64()
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("A%d", r), row.EntryID)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("B%d", r), row.formatDate("2006-01-02"))
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("C%d", r), row.Description)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("D%d", r), row.DebitAccount)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("E%d", r), row.CreditAccount)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("F%d", r), amount)
		total = total.Add(row.Amount)
	}

	totalAmount, _ := total.Float64()
	_ = f.SetCellValue(summarySheet, "A1", "Journal Entries Export")
	_ = f.SetCellValue(summarySheet, "A3", "Company")
	_ = f.SetCellValue(summarySheet, "B3", meta.CompanyName)
	_ = f.SetCellValue(summarySheet, "A4", "Period")
	_ = f.SetCellValue(summarySheet, "B4", string(meta.Period))
	_ = f.SetCellValue(summarySheet, "A5", "Set")
	_ = f.SetCellValue(summarySheet, "B5", string(meta.Set))
	_ = f.SetCellValue(summarySheet, "A6", "Entries")
	_ = f.SetCellValue(summarySheet, "B6", len(rows))
	_ = f.SetCellValue(summarySheet, "A7", "Total Amount")
	_ = f.SetCellValue(summarySheet, "B7", totalAmount)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
