package domain

// ValuationRecord is the per-holding row of the holdings valuation view.
// The money fields are pointers because a row degrades, rather than fails,
// when either the current quote or the as-of cost basis cannot be resolved;
// Note says which one was missing.
type ValuationRecord struct {
	Symbol                string   `json:"symbol"`
	Quantity              float64  `json:"quantity"`
	PurchaseTimestampUnix int64    `json:"purchaseTimestampUnix"`
	PurchaseDate          string   `json:"purchaseDate"`
	CostBasisPerShare     *float64 `json:"costBasisPerShare"`
	CostBasisTotal        *float64 `json:"costBasisTotal"`
	CurrentPrice          *float64 `json:"currentPrice"`
	MarketValue           *float64 `json:"marketValue"`
	Profit                *float64 `json:"profit"`
	ReturnPercent         *float64 `json:"returnPercent"`
	Note                  string   `json:"note,omitempty"`
}

type PortfolioValuation struct {
	CalculationTime    string            `json:"calculationTime"`
	Message            string            `json:"message,omitempty"`
	TotalCostBasis     float64           `json:"totalCostBasis"`
	TotalMarketValue   float64           `json:"totalMarketValue"`
	TotalProfit        float64           `json:"totalProfit"`
	TotalReturnPercent float64           `json:"totalReturnPercent"`
	Holdings           []ValuationRecord `json:"holdings"`
}

// DailyPerformancePoint is one day of the 30-day portfolio series merged
// with the benchmark return for the same date.
type DailyPerformancePoint struct {
	Date                      string  `json:"date"`
	TotalAssets               float64 `json:"totalAssets"`
	DailyProfitLoss           float64 `json:"dailyProfitLoss"`
	DailyReturnPercentage     float64 `json:"dailyReturnPercentage"`
	BenchmarkReturnPercentage float64 `json:"benchmarkReturnPercentage"`
}

type AllocationSlice struct {
	AssetClass string  `json:"assetClass"`
	TotalValue float64 `json:"totalValue"`
	Percentage float64 `json:"percentage"`
}
