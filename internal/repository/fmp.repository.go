package repository

import (
	"context"
	"fmt"
	"net/http"
	"stockfolio/pkg/fmp"
	"time"
)

// FmpRepository wraps the Financial Modeling Prep client behind the same
// repository shape as the other external providers.
type FmpRepository interface {
	// DailyReturns maps each trading day in [from, to] (YYYY-MM-DD key) to
	// the symbol's percent change on that day.
	DailyReturns(ctx context.Context, symbol string, from, to time.Time) (map[string]float64, error)
	GetQuote(ctx context.Context, symbol string) (*fmp.Quote, error)
	GetRatingSnapshot(ctx context.Context, symbol string) (*fmp.RatingSnapshot, error)
}

func NewFmpRepository(apiKey string) FmpRepository {
	return fmpRepositoryHandler{
		Client: fmp.Client{
			HttpClient: &http.Client{Timeout: 15 * time.Second},
			ApiKey:     apiKey,
		},
	}
}

type fmpRepositoryHandler struct {
	Client fmp.Client
}

func (h fmpRepositoryHandler) DailyReturns(ctx context.Context, symbol string, from, to time.Time) (map[string]float64, error) {
	bars, err := h.Client.HistoricalPrices(ctx, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily returns for %s: %w", symbol, err)
	}

	out := map[string]float64{}
	for _, bar := range bars {
		out[bar.Date] = bar.ChangePercent
	}

	return out, nil
}

func (h fmpRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*fmp.Quote, error) {
	return h.Client.GetQuote(ctx, symbol)
}

func (h fmpRepositoryHandler) GetRatingSnapshot(ctx context.Context, symbol string) (*fmp.RatingSnapshot, error) {
	return h.Client.GetRatingSnapshot(ctx, symbol)
}
