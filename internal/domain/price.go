package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one daily close for a symbol. Date is UTC midnight, day
// granularity; at most one row exists per (symbol, date).
type PricePoint struct {
	Symbol string
	Date   time.Time
	Close  decimal.Decimal
}
