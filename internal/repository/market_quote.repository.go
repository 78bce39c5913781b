package repository

import (
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	. "stockfolio/internal/db/models/postgres/public/table"
	"stockfolio/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type MarketQuoteRepository interface {
	List(tickers []domain.MarketTicker) ([]model.MarketQuote, error)
}

func NewMarketQuoteRepository(db *sql.DB) MarketQuoteRepository {
	return marketQuoteRepositoryHandler{Db: db}
}

type marketQuoteRepositoryHandler struct {
	Db *sql.DB
}

func (h marketQuoteRepositoryHandler) List(tickers []domain.MarketTicker) ([]model.MarketQuote, error) {
	if len(tickers) == 0 {
		return []model.MarketQuote{}, nil
	}

	// pairwise (symbol, asset_class) match against the configured list
	pairs := []BoolExpression{}
	for _, t := range tickers {
		pairs = append(pairs, AND(
			MarketQuote.Symbol.EQ(String(t.Symbol)),
			MarketQuote.AssetClass.EQ(String(t.AssetClass)),
		))
	}

	query := MarketQuote.
		SELECT(MarketQuote.AllColumns).
		WHERE(OR(pairs...)).
		ORDER_BY(MarketQuote.Symbol.ASC())

	result := []model.MarketQuote{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list market quotes: %w", err)
	}

	return result, nil
}
