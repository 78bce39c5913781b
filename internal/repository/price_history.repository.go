package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	. "stockfolio/internal/db/models/postgres/public/table"
	"stockfolio/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type PriceHistoryRepository interface {
	Add(tx *sql.Tx, prices []model.PriceHistory) error
	// GetAsOf returns the most recent price point for symbol at or before
	// ts, or nil when no such row exists.
	GetAsOf(symbol string, ts time.Time) (*domain.PricePoint, error)
	List(symbols []string, start, end time.Time) ([]domain.PricePoint, error)
	// LatestAsOf resolves each symbol's last close at or before date in a
	// single query. Symbols with no history are absent from the result.
	LatestAsOf(symbols []string, date time.Time) (map[string]float64, error)
}

func NewPriceHistoryRepository(db *sql.DB) PriceHistoryRepository {
	return priceHistoryRepositoryHandler{Db: db}
}

type priceHistoryRepositoryHandler struct {
	Db *sql.DB
}

func (h priceHistoryRepositoryHandler) Add(tx *sql.Tx, prices []model.PriceHistory) error {
	if len(prices) == 0 {
		return nil
	}
	query := PriceHistory.
		INSERT(PriceHistory.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			PriceHistory.Symbol, PriceHistory.Date,
		).DO_UPDATE(
		SET(
			PriceHistory.ClosePrice.SET(PriceHistory.EXCLUDED.ClosePrice),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add price history rows: %w", err)
	}

	return nil
}

func (h priceHistoryRepositoryHandler) GetAsOf(symbol string, ts time.Time) (*domain.PricePoint, error) {
	query := PriceHistory.
		SELECT(PriceHistory.AllColumns).
		WHERE(
			AND(
				PriceHistory.Symbol.EQ(String(symbol)),
				PriceHistory.Date.LT_EQ(DateT(ts)),
			),
		).
		ORDER_BY(PriceHistory.Date.DESC()).
		LIMIT(1)

	result := model.PriceHistory{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query as-of price for %s at %v: %w", symbol, ts, err)
	}

	return &domain.PricePoint{
		Symbol: result.Symbol,
		Date:   result.Date,
		Close:  decimal.NewFromFloat(result.ClosePrice),
	}, nil
}

func (h priceHistoryRepositoryHandler) List(symbols []string, start, end time.Time) ([]domain.PricePoint, error) {
	symbolExpressions := []Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, String(s))
	}

	query := PriceHistory.
		SELECT(PriceHistory.AllColumns).
		WHERE(
			AND(
				PriceHistory.Symbol.IN(symbolExpressions...),
				PriceHistory.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(PriceHistory.Date.ASC())

	result := []model.PriceHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	out := []domain.PricePoint{}
	for _, p := range result {
		out = append(out, domain.PricePoint{
			Symbol: p.Symbol,
			Date:   p.Date,
			Close:  decimal.NewFromFloat(p.ClosePrice),
		})
	}

	return out, nil
}

func (h priceHistoryRepositoryHandler) LatestAsOf(symbols []string, date time.Time) (map[string]float64, error) {
	symbolExpressions := []Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, String(s))
	}

	// DISTINCT ON (symbol) with date DESC picks each symbol's newest row
	// at or before the cutoff.
	query := PriceHistory.
		SELECT(PriceHistory.AllColumns).
		DISTINCT(PriceHistory.Symbol).
		WHERE(
			AND(
				PriceHistory.Symbol.IN(symbolExpressions...),
				PriceHistory.Date.LT_EQ(DateT(date)),
			),
		).
		ORDER_BY(PriceHistory.Symbol.ASC(), PriceHistory.Date.DESC())

	result := []model.PriceHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest as-of prices: %w", err)
	}

	out := map[string]float64{}
	for _, p := range result {
		out[p.Symbol] = p.ClosePrice
	}

	return out, nil
}
