package repository

import (
	"context"
	"stockfolio/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository is the current-quote provider. Partial results are
// allowed: a symbol absent from the returned map is unresolved, not an
// error.
type AlpacaRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, err
	}

	out := map[string]decimal.Decimal{}
	for symbol, result := range results {
		price := decimal.NewFromFloat(result.BidPrice)
		if price.IsZero() {
			// leave the symbol unresolved rather than reporting a 0 quote
			log.Warnf("got 0 price for %s - treating as unresolved", symbol)
			continue
		}
		out[symbol] = price
	}

	return out, nil
}
