package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"stockfolio/api"
	"stockfolio/internal"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	config := internal.DefaultPortfolioConfig()

	stockHoldingRepository := repository.NewStockHoldingRepository(dbConn)
	priceHistoryRepository := repository.NewPriceHistoryRepository(dbConn)
	latestNewsRepository := repository.NewLatestNewsRepository(dbConn)
	marketQuoteRepository := repository.NewMarketQuoteRepository(dbConn)
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	fmpRepository := repository.NewFmpRepository(secrets.FmpApiKey)

	valuationService := service.NewValuationService(
		stockHoldingRepository,
		priceHistoryRepository,
		alpacaRepository,
	)
	dailyPerformanceService := service.NewDailyPerformanceService(
		stockHoldingRepository,
		priceHistoryRepository,
		fmpRepository,
		config,
	)
	allocationService := service.NewAllocationService(
		stockHoldingRepository,
		alpacaRepository,
	)
	ratingService := service.NewRatingService(
		stockHoldingRepository,
		fmpRepository,
		config,
	)
	indexService := service.NewIndexService(fmpRepository, config)
	newsService := service.NewNewsService(
		stockHoldingRepository,
		latestNewsRepository,
	)
	marketService := service.NewMarketService(marketQuoteRepository, config)

	apiHandler := &api.ApiHandler{
		Db:                      dbConn,
		ValuationService:        valuationService,
		DailyPerformanceService: dailyPerformanceService,
		AllocationService:       allocationService,
		RatingService:           ratingService,
		IndexService:            indexService,
		NewsService:             newsService,
		MarketService:           marketService,
		StockHoldingRepository:  stockHoldingRepository,
		PriceHistoryRepository:  priceHistoryRepository,
		ApiRequestRepository:    repository.NewApiRequestRepository(),
		Config:                  config,
	}

	return apiHandler, nil
}
