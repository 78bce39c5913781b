package fmp

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	requests []*http.Request
	status   int
	body     string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     http.Header{},
	}, nil
}

func Test_HistoricalPrices(t *testing.T) {
	transport := &stubTransport{
		status: http.StatusOK,
		body: `[
			{"symbol": "SPY", "date": "2024-02-14", "close": 500.12, "changePercent": 0.9612},
			{"symbol": "SPY", "date": "2024-02-13", "close": 495.36, "changePercent": -1.3701}
		]`,
	}
	client := Client{
		HttpClient: &http.Client{Transport: transport},
		ApiKey:     "test-key",
	}

	bars, err := client.HistoricalPrices(
		context.Background(),
		"SPY",
		time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	require.Equal(t, DailyBar{Symbol: "SPY", Date: "2024-02-14", Close: 500.12, ChangePercent: 0.9612}, bars[0])

	require.Len(t, transport.requests, 1)
	req := transport.requests[0]
	require.Equal(t, "/stable/historical-price-eod/full", req.URL.Path)
	require.Equal(t, "SPY", req.URL.Query().Get("symbol"))
	require.Equal(t, "2024-02-13", req.URL.Query().Get("from"))
	require.Equal(t, "2024-02-14", req.URL.Query().Get("to"))
	require.Equal(t, "test-key", req.URL.Query().Get("apikey"))
}

func Test_GetQuote(t *testing.T) {
	t.Run("unwraps the one-element array", func(t *testing.T) {
		transport := &stubTransport{
			status: http.StatusOK,
			body:   `[{"symbol": "^GSPC", "name": "S&P 500", "price": 5026.61, "changePercentage": 0.57}]`,
		}
		client := Client{
			HttpClient: &http.Client{Transport: transport},
			ApiKey:     "test-key",
		}

		quote, err := client.GetQuote(context.Background(), "^GSPC")
		require.NoError(t, err)
		require.Equal(t, &Quote{Symbol: "^GSPC", Name: "S&P 500", Price: 5026.61, ChangePercentage: 0.57}, quote)
	})

	t.Run("empty array is an error", func(t *testing.T) {
		transport := &stubTransport{status: http.StatusOK, body: `[]`}
		client := Client{
			HttpClient: &http.Client{Transport: transport},
			ApiKey:     "test-key",
		}

		_, err := client.GetQuote(context.Background(), "BOGUS")
		require.Error(t, err)
	})

	t.Run("non-200 propagates the body", func(t *testing.T) {
		transport := &stubTransport{status: http.StatusTooManyRequests, body: `{"error": "rate limited"}`}
		client := Client{
			HttpClient: &http.Client{Transport: transport},
			ApiKey:     "test-key",
		}

		_, err := client.GetQuote(context.Background(), "^GSPC")
		require.Error(t, err)
		require.Contains(t, err.Error(), "429")
	})
}

func Test_GetRatingSnapshot(t *testing.T) {
	transport := &stubTransport{
		status: http.StatusOK,
		body: `[{
			"symbol": "AAPL",
			"rating": "A-",
			"discountedCashFlowScore": 3,
			"returnOnAssetsScore": 5,
			"debtToEquityScore": 2,
			"priceToEarningsScore": 3,
			"priceToBookScore": 1
		}]`,
	}
	client := Client{
		HttpClient: &http.Client{Transport: transport},
		ApiKey:     "test-key",
	}

	snapshot, err := client.GetRatingSnapshot(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, &RatingSnapshot{
		Symbol:                  "AAPL",
		Rating:                  "A-",
		DiscountedCashFlowScore: 3,
		ReturnOnAssetsScore:     5,
		DebtToEquityScore:       2,
		PriceToEarningsScore:    3,
		PriceToBookScore:        1,
	}, snapshot)
}
