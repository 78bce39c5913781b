package service

import (
	"context"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"stockfolio/internal/util"
	"time"

	"golang.org/x/sync/errgroup"
)

// DailyPerformanceService synthesizes a forward-filled daily series of
// total portfolio value over a rolling window and merges it with the
// benchmark index's daily returns.
type DailyPerformanceService interface {
	GetDailyPerformance(ctx context.Context, endDate *time.Time) ([]domain.DailyPerformancePoint, error)
}

func NewDailyPerformanceService(
	holdingRepository repository.StockHoldingRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	fmpRepository repository.FmpRepository,
	config internal.PortfolioConfig,
) DailyPerformanceService {
	return dailyPerformanceServiceHandler{
		HoldingRepository:      holdingRepository,
		PriceHistoryRepository: priceHistoryRepository,
		FmpRepository:          fmpRepository,
		Config:                 config,
	}
}

type dailyPerformanceServiceHandler struct {
	HoldingRepository      repository.StockHoldingRepository
	PriceHistoryRepository repository.PriceHistoryRepository
	FmpRepository          repository.FmpRepository
	Config                 internal.PortfolioConfig
}

func (h dailyPerformanceServiceHandler) GetDailyPerformance(ctx context.Context, endDate *time.Time) ([]domain.DailyPerformancePoint, error) {
	end := time.Now().UTC()
	if endDate != nil {
		end = *endDate
	}
	window := util.DateWindow(end, h.Config.PerformanceWindow)
	windowStart := window[0]
	windowEnd := window[len(window)-1]

	holdings, err := h.HoldingRepository.List(repository.StockHoldingListFilter{})
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return []domain.DailyPerformancePoint{}, nil
	}

	// the portfolio walk and the benchmark fetch are independent; run
	// them as a two-branch fork/join and merge by date afterwards
	var (
		points       []domain.DailyPerformancePoint
		benchmarkMap map[string]float64
	)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var walkErr error
		points, walkErr = h.walkPortfolioValues(holdings, window)
		return walkErr
	})

	group.Go(func() error {
		log := logger.FromContext(groupCtx)
		returns, benchmarkErr := h.FmpRepository.DailyReturns(groupCtx, h.Config.BenchmarkSymbol, windowStart, windowEnd)
		if benchmarkErr != nil {
			// benchmark is best-effort: substitute an empty series so
			// every day defaults to 0 instead of failing the request
			log.Warnf("failed to fetch benchmark returns for %s: %s", h.Config.BenchmarkSymbol, benchmarkErr.Error())
			returns = map[string]float64{}
		}
		benchmarkMap = returns
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i := range points {
		points[i].BenchmarkReturnPercentage = internal.Round4(benchmarkMap[points[i].Date])
	}

	return points, nil
}

// walkPortfolioValues computes the total portfolio value per window day
// with forward-fill: each symbol's last known close carries into days that
// have no price row. The carry state is seeded with each symbol's as-of
// price at the window boundary, so a symbol whose only history predates
// the window still values correctly from day one.
func (h dailyPerformanceServiceHandler) walkPortfolioValues(holdings []domain.Holding, window []time.Time) ([]domain.DailyPerformancePoint, error) {
	symbols := distinctSymbols(holdings)
	windowStart := window[0]
	windowEnd := window[len(window)-1]

	lastKnownPrices, err := h.PriceHistoryRepository.LatestAsOf(symbols, windowStart)
	if err != nil {
		return nil, err
	}

	inWindow, err := h.PriceHistoryRepository.List(symbols, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	pricesBySymbolByDate := map[string]map[string]float64{}
	for _, p := range inWindow {
		if _, ok := pricesBySymbolByDate[p.Symbol]; !ok {
			pricesBySymbolByDate[p.Symbol] = map[string]float64{}
		}
		pricesBySymbolByDate[p.Symbol][p.Date.Format(time.DateOnly)] = p.Close.InexactFloat64()
	}

	totals := make([]float64, 0, len(window))
	for _, day := range window {
		dateStr := day.Format(time.DateOnly)
		dailyTotal := float64(0)
		for _, holding := range holdings {
			priceForDay, ok := pricesBySymbolByDate[holding.Symbol][dateStr]
			if ok {
				lastKnownPrices[holding.Symbol] = priceForDay
			} else {
				// forward-fill read; a symbol never priced counts as 0
				priceForDay = lastKnownPrices[holding.Symbol]
			}
			dailyTotal += holding.Quantity * priceForDay
		}
		totals = append(totals, internal.Round2(dailyTotal))
	}

	points := make([]domain.DailyPerformancePoint, 0, len(window))
	for i, day := range window {
		var dailyChange, dailyReturn float64
		// an unchanged or zero-based prior value yields no computable
		// return; the first day has no predecessor at all
		if i > 0 && totals[i] != totals[i-1] && totals[i-1] > 0 {
			dailyChange = totals[i] - totals[i-1]
			dailyReturn = dailyChange / totals[i-1] * 100
		}
		points = append(points, domain.DailyPerformancePoint{
			Date:                  day.Format(time.DateOnly),
			TotalAssets:           totals[i],
			DailyProfitLoss:       internal.Round2(dailyChange),
			DailyReturnPercentage: internal.Round2(dailyReturn),
		})
	}

	return points, nil
}
