package domain

import "time"

// Holding is a single purchase lot in the simulated portfolio. Quantity is
// always positive; AssetClass may be empty when the instrument type was
// never resolved.
type Holding struct {
	Symbol                string
	Quantity              float64
	PurchaseTimestampUnix int64
	AssetClass            string
}

func (h Holding) PurchaseTime() time.Time {
	return time.Unix(h.PurchaseTimestampUnix, 0).UTC()
}
