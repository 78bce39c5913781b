package service

import (
	"context"
	"errors"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	mock_repository "stockfolio/internal/repository/mocks"
	"stockfolio/pkg/fmp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetPortfolioRating(t *testing.T) {
	config := internal.PortfolioConfig{
		RatingAllowList: map[string]bool{
			"AAPL": true,
			"MSFT": true,
		},
		RequestInterval: time.Millisecond,
	}

	t.Run("averages scores across rated holdings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		fmpRepository := mock_repository.NewMockFmpRepository(ctrl)

		handler := ratingServiceHandler{
			HoldingRepository: holdingRepository,
			FmpRepository:     fmpRepository,
			Config:            config,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{
				{Symbol: "AAPL", Quantity: 1},
				{Symbol: "MSFT", Quantity: 1},
			}, nil)

		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), "AAPL").
			Return(&fmp.RatingSnapshot{
				DiscountedCashFlowScore: 4,
				ReturnOnAssetsScore:     5,
				DebtToEquityScore:       3,
				PriceToEarningsScore:    2,
				PriceToBookScore:        1,
			}, nil)
		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), "MSFT").
			Return(&fmp.RatingSnapshot{
				DiscountedCashFlowScore: 2,
				ReturnOnAssetsScore:     3,
				DebtToEquityScore:       5,
				PriceToEarningsScore:    4,
				PriceToBookScore:        2,
			}, nil)

		rating, err := handler.GetPortfolioRating(context.Background())
		require.NoError(t, err)

		require.Empty(t, rating.Message)
		require.Equal(t, []string{"AAPL", "MSFT"}, rating.RatedSymbols)
		require.Equal(t, float64(3), *rating.AverageDiscountedCashFlowScore)
		require.Equal(t, float64(4), *rating.AverageReturnOnAssetsScore)
		require.Equal(t, float64(4), *rating.AverageDebtToEquityScore)
		require.Equal(t, float64(3), *rating.AveragePriceToEarningsScore)
		require.Equal(t, 1.5, *rating.AveragePriceToBookScore)
	})

	t.Run("skips symbols outside the allow list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		fmpRepository := mock_repository.NewMockFmpRepository(ctrl)

		handler := ratingServiceHandler{
			HoldingRepository: holdingRepository,
			FmpRepository:     fmpRepository,
			Config:            config,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{
				{Symbol: "AAPL", Quantity: 1},
				{Symbol: "OBSCURECO", Quantity: 1},
			}, nil)

		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), "AAPL").
			Return(&fmp.RatingSnapshot{DiscountedCashFlowScore: 4}, nil)

		rating, err := handler.GetPortfolioRating(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, rating.RatedSymbols)
	})

	t.Run("no ratable holdings yields a message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		fmpRepository := mock_repository.NewMockFmpRepository(ctrl)

		handler := ratingServiceHandler{
			HoldingRepository: holdingRepository,
			FmpRepository:     fmpRepository,
			Config:            config,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{
				{Symbol: "OBSCURECO", Quantity: 1},
			}, nil)

		rating, err := handler.GetPortfolioRating(context.Background())
		require.NoError(t, err)
		require.Equal(t, "no ratable holdings", rating.Message)
		require.Nil(t, rating.AverageDiscountedCashFlowScore)
	})

	t.Run("every fetch failing yields a message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		fmpRepository := mock_repository.NewMockFmpRepository(ctrl)

		handler := ratingServiceHandler{
			HoldingRepository: holdingRepository,
			FmpRepository:     fmpRepository,
			Config:            config,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{
				{Symbol: "AAPL", Quantity: 1},
				{Symbol: "MSFT", Quantity: 1},
			}, nil)

		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("fmp unavailable")).
			Times(2)

		rating, err := handler.GetPortfolioRating(context.Background())
		require.NoError(t, err)
		require.Equal(t, "failed to fetch ratings for all holdings", rating.Message)
	})

	t.Run("partial failure still averages the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		fmpRepository := mock_repository.NewMockFmpRepository(ctrl)

		handler := ratingServiceHandler{
			HoldingRepository: holdingRepository,
			FmpRepository:     fmpRepository,
			Config:            config,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{
				{Symbol: "AAPL", Quantity: 1},
				{Symbol: "MSFT", Quantity: 1},
			}, nil)

		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), "AAPL").
			Return(nil, errors.New("fmp unavailable"))
		fmpRepository.EXPECT().
			GetRatingSnapshot(gomock.Any(), "MSFT").
			Return(&fmp.RatingSnapshot{DiscountedCashFlowScore: 5}, nil)

		rating, err := handler.GetPortfolioRating(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"MSFT"}, rating.RatedSymbols)
		require.Equal(t, float64(5), *rating.AverageDiscountedCashFlowScore)
	})
}
