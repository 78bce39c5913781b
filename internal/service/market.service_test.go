package service

import (
	"context"
	"errors"
	"stockfolio/internal"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	mock_repository "stockfolio/internal/repository/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetMarketData(t *testing.T) {
	config := internal.PortfolioConfig{
		MarketTickers: []domain.MarketTicker{
			{Symbol: "SPY", AssetClass: "ETF"},
			{Symbol: "BTCUSD", AssetClass: "CRYPTO"},
		},
	}

	t.Run("returns the cached snapshot rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)

		handler := marketServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			Config:                config,
		}

		rows := []model.MarketQuote{
			{Symbol: "SPY", AssetClass: "ETF", Price: 500.12},
			{Symbol: "BTCUSD", AssetClass: "CRYPTO", Price: 51234.5},
		}
		marketQuoteRepository.EXPECT().
			List(config.MarketTickers).
			Return(rows, nil)

		out, err := handler.GetMarketData(context.Background())
		require.NoError(t, err)
		require.Equal(t, rows, out)
	})

	t.Run("an empty snapshot is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)

		handler := marketServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			Config:                config,
		}

		marketQuoteRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.MarketQuote{}, nil)

		_, err := handler.GetMarketData(context.Background())
		require.Error(t, err)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)

		handler := marketServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			Config:                config,
		}

		marketQuoteRepository.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := handler.GetMarketData(context.Background())
		require.Error(t, err)
	})
}
