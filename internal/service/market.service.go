package service

import (
	"context"
	"fmt"
	"stockfolio/internal"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/repository"
)

// MarketService serves the cached market snapshot for the configured
// ticker list.
type MarketService interface {
	GetMarketData(ctx context.Context) ([]model.MarketQuote, error)
}

func NewMarketService(marketQuoteRepository repository.MarketQuoteRepository, config internal.PortfolioConfig) MarketService {
	return marketServiceHandler{
		MarketQuoteRepository: marketQuoteRepository,
		Config:                config,
	}
}

type marketServiceHandler struct {
	MarketQuoteRepository repository.MarketQuoteRepository
	Config                internal.PortfolioConfig
}

func (h marketServiceHandler) GetMarketData(ctx context.Context) ([]model.MarketQuote, error) {
	rows, err := h.MarketQuoteRepository.List(h.Config.MarketTickers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no market data found for configured tickers")
	}

	return rows, nil
}
