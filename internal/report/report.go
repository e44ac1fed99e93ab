// Package report reconciles the merged export table and derives the
// transaction and line-item views.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jamil1016/dailyreport/internal/model"
	"github.com/jamil1016/dailyreport/internal/normalize"
	"github.com/jamil1016/dailyreport/internal/table"
)

const (
	// DateTimeFormat is the derived full-timestamp cell format.
	DateTimeFormat = "2006-01-02 15:04:05"
	// DateFormat is the derived calendar-date cell format.
	DateFormat = "2006-01-02"
)

// dateLayouts are the timestamp shapes POS terminals have been seen to
// write, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate coerces a raw Date cell to a timestamp. The zero time marks a
// value that matched no known layout.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Views holds the three outputs of one processing run.
type Views struct {
	Report       *table.Table // every reconciled row, all columns
	Transactions *table.Table // one row per OR No, dish columns dropped
	Items        []model.LineItem
}

// Build reconciles t in place and derives the three views. The returned
// Report view is t itself: header fields forward-filled, a DateTime column
// inserted after the first column, Date reduced to the calendar date, and
// dish names normalized. Build fails when the reconciled table cannot
// support the transaction or line-item projections.
func Build(t *table.Table) (*Views, error) {
	for _, col := range model.FillColumns {
		t.ForwardFill(col)
	}
	t.DropColumn(model.ColNoData)

	// Derive the full timestamp, then overwrite Date with its calendar
	// date. Unparseable cells become blank in both columns.
	stamps := make([]string, t.Len())
	dates := make([]string, t.Len())
	for i := 0; i < t.Len(); i++ {
		raw, _ := t.Cell(i, model.ColDate)
		if ts := ParseDate(raw); !ts.IsZero() {
			stamps[i] = ts.Format(DateTimeFormat)
			dates[i] = ts.Format(DateFormat)
		}
	}
	if err := t.InsertColumn(1, model.ColDateTime, stamps); err != nil {
		return nil, fmt.Errorf("inserting %s column: %w", model.ColDateTime, err)
	}
	for i := 0; i < t.Len(); i++ {
		t.SetCell(i, model.ColDate, dates[i])
	}

	if t.HasColumn(model.ColDishes) {
		for i := 0; i < t.Len(); i++ {
			raw, _ := t.Cell(i, model.ColDishes)
			t.SetCell(i, model.ColDishes, normalize.Clean(raw))
		}
	}

	tx, err := t.DedupeBy(model.ColORNo)
	if err != nil {
		return nil, fmt.Errorf("building transaction view: %w", err)
	}
	tx.DropColumn(model.ColDishes)
	tx.DropColumn(model.ColDishQty)

	items, err := buildItems(t)
	if err != nil {
		return nil, fmt.Errorf("building line-item view: %w", err)
	}

	return &Views{Report: t, Transactions: tx, Items: items}, nil
}

// buildItems projects the fixed line-item columns and types each row. Every
// column in model.ItemColumns must exist; the view is 1:1 with the
// reconciled rows.
func buildItems(t *table.Table) ([]model.LineItem, error) {
	proj, err := t.Project(model.ItemColumns...)
	if err != nil {
		return nil, err
	}
	items := make([]model.LineItem, 0, proj.Len())
	for i := 0; i < proj.Len(); i++ {
		row := proj.Row(i)
		item := model.LineItem{
			ORNo:          row[0],
			POSName:       row[3],
			CashierName:   row[4],
			TransactionNo: row[5],
			Dish:          row[6],
		}
		if row[1] != "" {
			if ts, err := time.Parse(DateTimeFormat, row[1]); err == nil {
				item.DateTime = ts
			}
		}
		if row[2] != "" {
			if d, err := time.Parse(DateFormat, row[2]); err == nil {
				item.Date = d
			}
		}
		if s := strings.TrimSpace(row[7]); s != "" {
			if q, err := decimal.NewFromString(s); err == nil {
				item.Quantity = q
			}
		}
		items = append(items, item)
	}
	return items, nil
}
