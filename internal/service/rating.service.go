package service

import (
	"context"
	"stockfolio/internal"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"time"

	"github.com/montanaflynn/stats"
)

// PortfolioRating is the composite analyst-rating view over held symbols.
// Message is set instead of the averages when no holding was ratable.
type PortfolioRating struct {
	Message                        string   `json:"message,omitempty"`
	AverageDiscountedCashFlowScore *float64 `json:"averageDiscountedCashFlowScore,omitempty"`
	AverageReturnOnAssetsScore     *float64 `json:"averageReturnOnAssetsScore,omitempty"`
	AverageDebtToEquityScore       *float64 `json:"averageDebtToEquityScore,omitempty"`
	AveragePriceToEarningsScore    *float64 `json:"averagePriceToEarningsScore,omitempty"`
	AveragePriceToBookScore        *float64 `json:"averagePriceToBookScore,omitempty"`
	RatedSymbols                   []string `json:"ratedSymbols,omitempty"`
}

type RatingService interface {
	GetPortfolioRating(ctx context.Context) (*PortfolioRating, error)
}

func NewRatingService(
	holdingRepository repository.StockHoldingRepository,
	fmpRepository repository.FmpRepository,
	config internal.PortfolioConfig,
) RatingService {
	return ratingServiceHandler{
		HoldingRepository: holdingRepository,
		FmpRepository:     fmpRepository,
		Config:            config,
	}
}

type ratingServiceHandler struct {
	HoldingRepository repository.StockHoldingRepository
	FmpRepository     repository.FmpRepository
	Config            internal.PortfolioConfig
}

func (h ratingServiceHandler) GetPortfolioRating(ctx context.Context) (*PortfolioRating, error) {
	log := logger.FromContext(ctx)

	holdings, err := h.HoldingRepository.List(repository.StockHoldingListFilter{})
	if err != nil {
		return nil, err
	}

	eligible := []string{}
	for _, symbol := range distinctSymbols(holdings) {
		if h.Config.RatingAllowList[symbol] {
			eligible = append(eligible, symbol)
		}
	}
	if len(eligible) == 0 {
		return &PortfolioRating{Message: "no ratable holdings"}, nil
	}

	var (
		dcfScores []float64
		roaScores []float64
		dteScores []float64
		peScores  []float64
		pbScores  []float64
		rated     []string
	)

	// serial fetch with a fixed inter-call delay; a self-imposed throttle
	// toward the provider, not a correctness concern
	for i, symbol := range eligible {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(h.Config.RequestInterval):
			}
		}

		snapshot, err := h.FmpRepository.GetRatingSnapshot(ctx, symbol)
		if err != nil {
			log.Warnf("failed to fetch rating for %s: %s", symbol, err.Error())
			continue
		}
		dcfScores = append(dcfScores, snapshot.DiscountedCashFlowScore)
		roaScores = append(roaScores, snapshot.ReturnOnAssetsScore)
		dteScores = append(dteScores, snapshot.DebtToEquityScore)
		peScores = append(peScores, snapshot.PriceToEarningsScore)
		pbScores = append(pbScores, snapshot.PriceToBookScore)
		rated = append(rated, symbol)
	}

	if len(rated) == 0 {
		return &PortfolioRating{Message: "failed to fetch ratings for all holdings"}, nil
	}

	return &PortfolioRating{
		AverageDiscountedCashFlowScore: roundedMean(dcfScores),
		AverageReturnOnAssetsScore:     roundedMean(roaScores),
		AverageDebtToEquityScore:       roundedMean(dteScores),
		AveragePriceToEarningsScore:    roundedMean(peScores),
		AveragePriceToBookScore:        roundedMean(pbScores),
		RatedSymbols:                   rated,
	}, nil
}

func roundedMean(scores []float64) *float64 {
	mean, err := stats.Mean(scores)
	if err != nil {
		return nil
	}
	return internal.FloatPointer(internal.Round2(mean))
}
