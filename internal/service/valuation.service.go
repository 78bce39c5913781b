package service

import (
	"context"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ValuationService computes the per-holding valuation view: cost basis
// reconstructed from price history as of the purchase time, market value
// from live quotes, and portfolio totals.
type ValuationService interface {
	GetHoldingsValuation(ctx context.Context) (*domain.PortfolioValuation, error)
}

func NewValuationService(
	holdingRepository repository.StockHoldingRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	alpacaRepository repository.AlpacaRepository,
) ValuationService {
	return valuationServiceHandler{
		HoldingRepository:      holdingRepository,
		PriceHistoryRepository: priceHistoryRepository,
		AlpacaRepository:       alpacaRepository,
	}
}

type valuationServiceHandler struct {
	HoldingRepository      repository.StockHoldingRepository
	PriceHistoryRepository repository.PriceHistoryRepository
	AlpacaRepository       repository.AlpacaRepository
}

const (
	noteCurrentPriceUnavailable = "current price unavailable"
	noteCostBasisUnavailable    = "cost basis unavailable"
)

func (h valuationServiceHandler) GetHoldingsValuation(ctx context.Context) (*domain.PortfolioValuation, error) {
	log := logger.FromContext(ctx)

	holdings, err := h.HoldingRepository.List(repository.StockHoldingListFilter{
		RequirePurchaseTimestamp: true,
	})
	if err != nil {
		return nil, err
	}

	if len(holdings) == 0 {
		return &domain.PortfolioValuation{
			CalculationTime: time.Now().UTC().Format(time.RFC3339Nano),
			Message:         "no holdings with a recorded purchase time",
			Holdings:        []domain.ValuationRecord{},
		}, nil
	}

	symbols := distinctSymbols(holdings)

	// one batched quote call; total failure degrades every row rather
	// than failing the request
	quotes, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		log.Warnf("failed to fetch current prices, degrading all holdings: %s", err.Error())
		quotes = map[string]decimal.Decimal{}
	}

	costBases := h.resolveCostBases(ctx, holdings)

	var (
		records          = []domain.ValuationRecord{}
		totalCostBasis   float64
		totalMarketValue float64
	)

	for i, holding := range holdings {
		record := domain.ValuationRecord{
			Symbol:                holding.Symbol,
			Quantity:              holding.Quantity,
			PurchaseTimestampUnix: holding.PurchaseTimestampUnix,
			PurchaseDate:          holding.PurchaseTime().Format(time.DateOnly),
		}

		costBasisPerShare := costBases[i]
		if costBasisPerShare != nil {
			record.CostBasisPerShare = internal.FloatPointer(internal.Round2(*costBasisPerShare))
			record.CostBasisTotal = internal.FloatPointer(internal.Round2(*costBasisPerShare * holding.Quantity))
		}

		quote, ok := quotes[holding.Symbol]
		if !ok {
			record.Note = noteCurrentPriceUnavailable
			record.CurrentPrice = nil
			records = append(records, record)
			continue
		}
		currentPrice := quote.InexactFloat64()
		record.CurrentPrice = internal.FloatPointer(internal.Round2(currentPrice))
		marketValue := internal.Round2(currentPrice * holding.Quantity)
		record.MarketValue = internal.FloatPointer(marketValue)

		if costBasisPerShare == nil {
			// unresolved cost must not hide known present value: the
			// market value still counts toward the portfolio total
			record.Note = noteCostBasisUnavailable
			totalMarketValue += currentPrice * holding.Quantity
			records = append(records, record)
			continue
		}

		costBasisTotal := *record.CostBasisTotal
		profit := internal.Round2(marketValue - costBasisTotal)
		record.Profit = internal.FloatPointer(profit)
		record.ReturnPercent = internal.FloatPointer(internal.Round2(profit / costBasisTotal * 100))

		totalCostBasis += costBasisTotal
		totalMarketValue += marketValue
		records = append(records, record)
	}

	totalCostBasis = internal.Round2(totalCostBasis)
	totalMarketValue = internal.Round2(totalMarketValue)
	totalProfit := internal.Round2(totalMarketValue - totalCostBasis)

	// division undefined when cost basis is zero or entirely unresolved
	totalReturnPercent := float64(0)
	if totalCostBasis != 0 {
		totalReturnPercent = internal.Round2(totalProfit / totalCostBasis * 100)
	}

	return &domain.PortfolioValuation{
		CalculationTime:    time.Now().UTC().Format(time.RFC3339Nano),
		TotalCostBasis:     totalCostBasis,
		TotalMarketValue:   totalMarketValue,
		TotalProfit:        totalProfit,
		TotalReturnPercent: totalReturnPercent,
		Holdings:           records,
	}, nil
}

// resolveCostBases looks up each holding's as-of purchase price. The
// lookups are independent reads, so they run concurrently; a failed or
// empty lookup leaves that holding's entry nil.
func (h valuationServiceHandler) resolveCostBases(ctx context.Context, holdings []domain.Holding) []*float64 {
	log := logger.FromContext(ctx)

	out := make([]*float64, len(holdings))
	var wg sync.WaitGroup
	for i, holding := range holdings {
		wg.Add(1)
		go func(i int, holding domain.Holding) {
			defer wg.Done()
			pricePoint, err := h.PriceHistoryRepository.GetAsOf(holding.Symbol, holding.PurchaseTime())
			if err != nil {
				log.Warnf("failed to resolve cost basis for %s: %s", holding.Symbol, err.Error())
				return
			}
			if pricePoint == nil {
				log.Warnf("no price history for %s at or before %s", holding.Symbol, holding.PurchaseTime().Format(time.DateOnly))
				return
			}
			out[i] = internal.FloatPointer(pricePoint.Close.InexactFloat64())
		}(i, holding)
	}
	wg.Wait()

	return out
}

func distinctSymbols(holdings []domain.Holding) []string {
	seen := map[string]bool{}
	symbols := []string{}
	for _, h := range holdings {
		if !seen[h.Symbol] {
			seen[h.Symbol] = true
			symbols = append(symbols, h.Symbol)
		}
	}
	return symbols
}
