package internal

import (
	"context"
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"sync"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// IngestPrices backfills daily closes for symbol from Yahoo Finance into
// the price_history table, starting at start (default 2000-01-01).
func IngestPrices(
	tx *sql.Tx,
	symbol string,
	priceHistoryRepository repository.PriceHistoryRepository,
	start *time.Time,
) error {
	s := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		s = *start
	}
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.PriceHistory{}
	for iter.Next() {
		closePrice := iter.Bar().AdjClose.InexactFloat64()
		barDate := time.Unix(int64(iter.Bar().Timestamp), 0).UTC()
		models = append(models, model.PriceHistory{
			Symbol:     symbol,
			Date:       time.Date(barDate.Year(), barDate.Month(), barDate.Day(), 0, 0, 0, 0, time.UTC),
			ClosePrice: closePrice,
			CreatedAt:  time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	err := priceHistoryRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

// AsyncIngestPrices backfills many symbols with a bounded worker pool.
// Per-symbol failures are logged and skipped.
func AsyncIngestPrices(ctx context.Context, tx *sql.Tx, symbols []string, priceHistoryRepository repository.PriceHistoryRepository) {
	log := logger.FromContext(ctx)
	numGoroutines := 10

	inputCh := make(chan string, len(symbols))

	var wg sync.WaitGroup
	for _, s := range symbols {
		wg.Add(1)
		inputCh <- s
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			// drain the channel even after cancellation so every queued
			// symbol is accounted to the WaitGroup and Wait returns
			for symbol := range inputCh {
				if ctx.Err() != nil {
					log.Warnf("skipping price ingest for %s: %s", symbol, ctx.Err().Error())
					wg.Done()
					continue
				}
				err := IngestPrices(tx, symbol, priceHistoryRepository, nil)
				if err != nil {
					log.Warnf("failed to ingest prices for %s: %s", symbol, err.Error())
				}
				wg.Done()
			}
		}()
	}

	wg.Wait()
}
