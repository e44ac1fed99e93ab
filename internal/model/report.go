package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names as the POS terminal writes them in its tab-delimited exports.
const (
	ColDate          = "Date"
	ColDateTime      = "DateTime"
	ColPOSName       = "POS Name"
	ColCashierName   = "Cashier Name"
	ColTransactionNo = "Transaction No"
	ColORNo          = "OR No"
	ColDishes        = "Dishes"
	ColDishQty       = "Dish Quantities"

	// ColNoData shows up as a placeholder column in exports covering a
	// period with no sales.
	ColNoData = "No data found"
)

// FillColumns are the header fields the terminal populates only on the
// first row of each transaction block. Rows below inherit them by
// forward-fill during reconciliation.
var FillColumns = []string{ColDate, ColPOSName, ColCashierName, ColTransactionNo}

// ItemColumns is the fixed projection for the per-line-item view, in sheet
// order. All eight must exist in the reconciled table.
var ItemColumns = []string{
	ColORNo,
	ColDateTime,
	ColDate,
	ColPOSName,
	ColCashierName,
	ColTransactionNo,
	ColDishes,
	ColDishQty,
}

// LineItem is one dish entry within a transaction. A transaction may carry
// several line items sharing one OR No. A zero DateTime or Date means the
// source date cell failed to parse.
type LineItem struct {
	ORNo          string
	DateTime      time.Time
	Date          time.Time
	POSName       string
	CashierName   string
	TransactionNo string
	Dish          string
	Quantity      decimal.Decimal // zero when the source cell was blank or unreadable
}
