package main

import (
	"context"
	"log"
	"os"
	"stockfolio/cmd"
	"stockfolio/internal"
	"stockfolio/internal/db/models/postgres/public/model"
	"time"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
)

// one-off seeding tool. reads holdings.csv from the working directory,
// inserts the rows, then backfills daily prices for every seeded symbol
// plus the benchmark.

type holdingRow struct {
	Symbol                string  `csv:"symbol"`
	Quantity              float64 `csv:"quantity"`
	PurchaseTimestampUnix int64   `csv:"purchase_timestamp_unix"`
	AssetClass            string  `csv:"asset_class"`
}

func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	f, err := os.Open("holdings.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rows := []holdingRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now().UTC()
	models := []model.StockHolding{}
	symbols := []string{handler.Config.BenchmarkSymbol}
	for _, row := range rows {
		ts := row.PurchaseTimestampUnix
		models = append(models, model.StockHolding{
			Symbol:                row.Symbol,
			Quantity:              row.Quantity,
			PurchaseTimestampUnix: &ts,
			AssetClass:            &row.AssetClass,
			CreatedAt:             now,
		})
		symbols = append(symbols, row.Symbol)
	}

	tx, err := handler.Db.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	err = handler.StockHoldingRepository.Add(tx, models)
	if err != nil {
		log.Fatal(err)
	}

	internal.AsyncIngestPrices(context.Background(), tx, symbols, handler.PriceHistoryRepository)

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %d holdings and backfilled %d symbols", len(models), len(symbols))
}
