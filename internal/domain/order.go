package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable sale header. StaffUsername and the line names are copies,
// not references, so catalog edits never rewrite history.
type Order struct {
	ID            uint        `json:"id"`
	StoreID       uint        `json:"store_id"`
	StoreCode     string      `json:"store_code"`
	Timestamp     time.Time   `json:"timestamp"`
	Total         float64     `json:"total"`
	Discount      float64     `json:"discount"`
	StaffUsername string      `json:"staff_username"`
	Lines         []OrderLine `json:"lines"`
}

type OrderLine struct {
	ID       uint    `json:"id"`
	OrderID  uint    `json:"order_id"`
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
}

// OrderDraft is what a POS client submits before the store code is resolved.
type OrderDraft struct {
	StoreCode     string
	StaffUsername string
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Lines         []OrderDraftLine
}

type OrderDraftLine struct {
	Name  string
	Price decimal.Decimal
	Qty   int
}

// MaxAmount bounds every price, discount and total so they stay finite, exact to
// the penny, in the float64 columns.
var MaxAmount = decimal.New(1, 12)

// AmountInRange reports whether d is between zero and MaxAmount inclusive.
func AmountInRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(MaxAmount)
}

// Subtotal is the sum of price*qty over all lines.
func (d OrderDraft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range d.Lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
	}

	return sum
}

// TotalMatches reports whether total equals subtotal minus discount, compared in pence.
func (d OrderDraft) TotalMatches() bool {
	expected := d.Subtotal().Sub(d.Discount)

	return expected.Round(2).Equal(d.Total.Round(2))
}

type Summary struct {
	Stores int64 `json:"stores"`
	Items  int64 `json:"items"`
	Orders int64 `json:"orders"`
	Staff  int64 `json:"staff"`
}
