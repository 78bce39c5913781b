package service

import (
	"context"
	"errors"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/repository"
	mock_repository "stockfolio/internal/repository/mocks"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetHoldingsValuation(t *testing.T) {
	purchaseTs := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC).Unix()

	t.Run("fully priced portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository:      holdingRepository,
			PriceHistoryRepository: priceHistoryRepository,
			AlpacaRepository:       alpacaRepository,
		}

		holding := domain.Holding{
			Symbol:                "AAPL",
			Quantity:              10,
			PurchaseTimestampUnix: purchaseTs,
		}

		holdingRepository.EXPECT().
			List(repository.StockHoldingListFilter{RequirePurchaseTimestamp: true}).
			Return([]domain.Holding{holding}, nil)

		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"AAPL"}).
			Return(map[string]decimal.Decimal{
				"AAPL": decimal.NewFromFloat(165),
			}, nil)

		priceHistoryRepository.EXPECT().
			GetAsOf("AAPL", holding.PurchaseTime()).
			Return(&domain.PricePoint{
				Symbol: "AAPL",
				Date:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Close:  decimal.NewFromFloat(150),
			}, nil)

		valuation, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.NotEmpty(t, valuation.CalculationTime)
		_, err = time.Parse(time.RFC3339Nano, valuation.CalculationTime)
		require.NoError(t, err)

		require.Equal(t, float64(1500), valuation.TotalCostBasis)
		require.Equal(t, float64(1650), valuation.TotalMarketValue)
		require.Equal(t, float64(150), valuation.TotalProfit)
		require.Equal(t, float64(10), valuation.TotalReturnPercent)

		expected := []domain.ValuationRecord{
			{
				Symbol:                "AAPL",
				Quantity:              10,
				PurchaseTimestampUnix: purchaseTs,
				PurchaseDate:          "2024-01-05",
				CostBasisPerShare:     internal.FloatPointer(150),
				CostBasisTotal:        internal.FloatPointer(1500),
				CurrentPrice:          internal.FloatPointer(165),
				MarketValue:           internal.FloatPointer(1650),
				Profit:                internal.FloatPointer(150),
				ReturnPercent:         internal.FloatPointer(10),
			},
		}
		require.Equal(t, "", cmp.Diff(expected, valuation.Holdings))
	})

	t.Run("no holdings returns an empty summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository: holdingRepository,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{}, nil)

		valuation, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.Equal(t, "no holdings with a recorded purchase time", valuation.Message)
		require.Empty(t, valuation.Holdings)
		require.Equal(t, float64(0), valuation.TotalCostBasis)
		require.Equal(t, float64(0), valuation.TotalMarketValue)
		require.Equal(t, float64(0), valuation.TotalReturnPercent)
	})

	t.Run("missing quote degrades the row and skips totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository:      holdingRepository,
			PriceHistoryRepository: priceHistoryRepository,
			AlpacaRepository:       alpacaRepository,
		}

		holding := domain.Holding{
			Symbol:                "DELISTED",
			Quantity:              5,
			PurchaseTimestampUnix: purchaseTs,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{holding}, nil)

		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"DELISTED"}).
			Return(map[string]decimal.Decimal{}, nil)

		priceHistoryRepository.EXPECT().
			GetAsOf("DELISTED", holding.PurchaseTime()).
			Return(&domain.PricePoint{
				Symbol: "DELISTED",
				Close:  decimal.NewFromFloat(20),
			}, nil)

		valuation, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.Len(t, valuation.Holdings, 1)
		record := valuation.Holdings[0]
		require.Equal(t, "current price unavailable", record.Note)
		require.Nil(t, record.CurrentPrice)
		require.Nil(t, record.MarketValue)
		require.Nil(t, record.Profit)
		require.NotNil(t, record.CostBasisTotal)
		require.Equal(t, float64(100), *record.CostBasisTotal)

		// an unpriceable row contributes to neither total
		require.Equal(t, float64(0), valuation.TotalCostBasis)
		require.Equal(t, float64(0), valuation.TotalMarketValue)
		require.Equal(t, float64(0), valuation.TotalReturnPercent)
	})

	t.Run("missing cost basis still counts market value toward the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository:      holdingRepository,
			PriceHistoryRepository: priceHistoryRepository,
			AlpacaRepository:       alpacaRepository,
		}

		holding := domain.Holding{
			Symbol:                "NEWCO",
			Quantity:              4,
			PurchaseTimestampUnix: purchaseTs,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Holding{holding}, nil)

		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"NEWCO"}).
			Return(map[string]decimal.Decimal{
				"NEWCO": decimal.NewFromFloat(25),
			}, nil)

		priceHistoryRepository.EXPECT().
			GetAsOf("NEWCO", holding.PurchaseTime()).
			Return(nil, nil)

		valuation, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.Len(t, valuation.Holdings, 1)
		record := valuation.Holdings[0]
		require.Equal(t, "cost basis unavailable", record.Note)
		require.Nil(t, record.CostBasisPerShare)
		require.Nil(t, record.Profit)
		require.NotNil(t, record.MarketValue)
		require.Equal(t, float64(100), *record.MarketValue)

		require.Equal(t, float64(0), valuation.TotalCostBasis)
		require.Equal(t, float64(100), valuation.TotalMarketValue)
		require.Equal(t, float64(100), valuation.TotalProfit)
		// zero cost basis means the return percent is undefined, not inf
		require.Equal(t, float64(0), valuation.TotalReturnPercent)
	})

	t.Run("quote fetch failure degrades every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository:      holdingRepository,
			PriceHistoryRepository: priceHistoryRepository,
			AlpacaRepository:       alpacaRepository,
		}

		holdings := []domain.Holding{
			{Symbol: "AAPL", Quantity: 10, PurchaseTimestampUnix: purchaseTs},
			{Symbol: "MSFT", Quantity: 2, PurchaseTimestampUnix: purchaseTs},
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return(holdings, nil)

		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"AAPL", "MSFT"}).
			Return(nil, errors.New("alpaca unavailable"))

		priceHistoryRepository.EXPECT().
			GetAsOf("AAPL", gomock.Any()).
			Return(&domain.PricePoint{Symbol: "AAPL", Close: decimal.NewFromFloat(150)}, nil)
		priceHistoryRepository.EXPECT().
			GetAsOf("MSFT", gomock.Any()).
			Return(&domain.PricePoint{Symbol: "MSFT", Close: decimal.NewFromFloat(300)}, nil)

		valuation, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.Len(t, valuation.Holdings, 2)
		for _, record := range valuation.Holdings {
			require.Equal(t, "current price unavailable", record.Note)
			require.Nil(t, record.CurrentPrice)
		}
		require.Equal(t, float64(0), valuation.TotalMarketValue)
	})

	t.Run("repeated calls over frozen inputs differ only in calculationTime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository:      holdingRepository,
			PriceHistoryRepository: priceHistoryRepository,
			AlpacaRepository:       alpacaRepository,
		}

		holdings := []domain.Holding{
			{Symbol: "AAPL", Quantity: 10, PurchaseTimestampUnix: purchaseTs},
			{Symbol: "MSFT", Quantity: 3, PurchaseTimestampUnix: purchaseTs},
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return(holdings, nil).
			Times(2)
		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"AAPL", "MSFT"}).
			Return(map[string]decimal.Decimal{
				"AAPL": decimal.NewFromFloat(165),
				"MSFT": decimal.NewFromFloat(410.55),
			}, nil).
			Times(2)
		priceHistoryRepository.EXPECT().
			GetAsOf("AAPL", gomock.Any()).
			Return(&domain.PricePoint{Symbol: "AAPL", Close: decimal.NewFromFloat(150)}, nil).
			Times(2)
		priceHistoryRepository.EXPECT().
			GetAsOf("MSFT", gomock.Any()).
			Return(&domain.PricePoint{Symbol: "MSFT", Close: decimal.NewFromFloat(380.1)}, nil).
			Times(2)

		first, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)
		second, err := handler.GetHoldingsValuation(context.Background())
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first.Holdings, second.Holdings))
		require.Equal(t, first.TotalCostBasis, second.TotalCostBasis)
		require.Equal(t, first.TotalMarketValue, second.TotalMarketValue)
		require.Equal(t, first.TotalProfit, second.TotalProfit)
		require.Equal(t, first.TotalReturnPercent, second.TotalReturnPercent)
		require.Equal(t, first.Message, second.Message)
	})

	t.Run("holding repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockStockHoldingRepository(ctrl)

		handler := valuationServiceHandler{
			HoldingRepository: holdingRepository,
		}

		holdingRepository.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := handler.GetHoldingsValuation(context.Background())
		require.Error(t, err)
	})
}
