// Package export serializes a processing run into one multi-sheet xlsx
// workbook.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jamil1016/dailyreport/internal/model"
	"github.com/jamil1016/dailyreport/internal/report"
	"github.com/jamil1016/dailyreport/internal/table"
)

// Options name the workbook file and its sheets.
type Options struct {
	File             string
	ReportSheet      string
	TransactionSheet string
	DishSheet        string
}

// DefaultOptions returns the standard workbook layout.
func DefaultOptions() Options {
	return Options{
		File:             "Daily_Report.xlsx",
		ReportSheet:      "DailyReport",
		TransactionSheet: "Transactions",
		DishSheet:        "Dishes",
	}
}

// Write writes the three views into one workbook under dir and returns the
// workbook path. An existing workbook at that path is overwritten.
func Write(dir string, views *report.Views, opts Options) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", opts.ReportSheet); err != nil {
		return "", fmt.Errorf("naming sheet %s: %w", opts.ReportSheet, err)
	}
	if err := writeTable(f, opts.ReportSheet, views.Report); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(opts.TransactionSheet); err != nil {
		return "", fmt.Errorf("creating sheet %s: %w", opts.TransactionSheet, err)
	}
	if err := writeTable(f, opts.TransactionSheet, views.Transactions); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(opts.DishSheet); err != nil {
		return "", fmt.Errorf("creating sheet %s: %w", opts.DishSheet, err)
	}
	if err := writeItems(f, opts.DishSheet, views.Items); err != nil {
		return "", err
	}

	path := filepath.Join(dir, opts.File)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("writing workbook: %w", err)
	}
	return path, nil
}

// writeTable writes a header row followed by every table row, no index
// column.
func writeTable(f *excelize.File, sheet string, t *table.Table) error {
	if err := writeRow(f, sheet, 1, toAny(t.Columns())); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		if err := writeRow(f, sheet, i+2, toAny(t.Row(i))); err != nil {
			return err
		}
	}
	return nil
}

func writeItems(f *excelize.File, sheet string, items []model.LineItem) error {
	if err := writeRow(f, sheet, 1, toAny(model.ItemColumns)); err != nil {
		return err
	}
	for i, item := range items {
		row := []any{
			item.ORNo,
			formatTime(item.DateTime, report.DateTimeFormat),
			formatTime(item.Date, report.DateFormat),
			item.POSName,
			item.CashierName,
			item.TransactionNo,
			item.Dish,
			formatQuantity(item),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// formatTime renders the null timestamp marker as a blank cell.
func formatTime(ts time.Time, layout string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(layout)
}

func formatQuantity(item model.LineItem) string {
	if item.Quantity.IsZero() {
		return ""
	}
	return item.Quantity.String()
}
