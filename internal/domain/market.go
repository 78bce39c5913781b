package domain

// MarketTicker identifies one row of the cached market snapshot, keyed by
// symbol plus asset class since the same symbol can appear under more than
// one instrument type.
type MarketTicker struct {
	Symbol     string
	AssetClass string
}

// IndexQuote is a live quote for a market index.
type IndexQuote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ChangePercentage float64 `json:"changePercentage"`
}
