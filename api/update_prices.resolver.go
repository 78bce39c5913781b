package api

import (
	"fmt"
	"stockfolio/internal"
	"stockfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

// updatePrices backfills daily close prices for every held symbol plus the
// benchmark. Runs synchronously since it backs a manual admin action.
func (m ApiHandler) updatePrices(c *gin.Context) {
	holdings, err := m.StockHoldingRepository.List(repository.StockHoldingListFilter{})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	symbolSet := map[string]bool{
		m.Config.BenchmarkSymbol: true,
	}
	for _, holding := range holdings {
		symbolSet[holding.Symbol] = true
	}
	symbols := []string{}
	for symbol := range symbolSet {
		symbols = append(symbols, symbol)
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	internal.AsyncIngestPrices(c.Request.Context(), tx, symbols, m.PriceHistoryRepository)

	err = tx.Commit()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to commit price updates: %w", err), c)
		return
	}

	c.JSON(200, successResponse(map[string]int{"symbolsUpdated": len(symbols)}))
}
