package repository

import (
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	. "stockfolio/internal/db/models/postgres/public/table"
	"stockfolio/internal/domain"
)

type StockHoldingListFilter struct {
	// RequirePurchaseTimestamp drops rows whose purchase timestamp was
	// never recorded; the valuation view cannot price those lots.
	RequirePurchaseTimestamp bool
}

type StockHoldingRepository interface {
	List(filter StockHoldingListFilter) ([]domain.Holding, error)
	Add(tx *sql.Tx, holdings []model.StockHolding) error
}

func NewStockHoldingRepository(db *sql.DB) StockHoldingRepository {
	return stockHoldingRepositoryHandler{Db: db}
}

type stockHoldingRepositoryHandler struct {
	Db *sql.DB
}

func (h stockHoldingRepositoryHandler) List(filter StockHoldingListFilter) ([]domain.Holding, error) {
	query := StockHolding.
		SELECT(StockHolding.AllColumns).
		ORDER_BY(StockHolding.Symbol.ASC())

	if filter.RequirePurchaseTimestamp {
		query = StockHolding.
			SELECT(StockHolding.AllColumns).
			WHERE(StockHolding.PurchaseTimestampUnix.IS_NOT_NULL()).
			ORDER_BY(StockHolding.Symbol.ASC())
	}

	result := []model.StockHolding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock holdings: %w", err)
	}

	out := []domain.Holding{}
	for _, r := range result {
		holding := domain.Holding{
			Symbol:   r.Symbol,
			Quantity: r.Quantity,
		}
		if r.PurchaseTimestampUnix != nil {
			holding.PurchaseTimestampUnix = *r.PurchaseTimestampUnix
		}
		if r.AssetClass != nil {
			holding.AssetClass = *r.AssetClass
		}
		out = append(out, holding)
	}

	return out, nil
}

func (h stockHoldingRepositoryHandler) Add(tx *sql.Tx, holdings []model.StockHolding) error {
	if len(holdings) == 0 {
		return nil
	}
	query := StockHolding.
		INSERT(StockHolding.MutableColumns).
		MODELS(holdings)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add stock holdings: %w", err)
	}

	return nil
}
