package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const baseUrl = "https://financialmodelingprep.com/stable"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

// DailyBar is one row of the historical-price-eod endpoint. ChangePercent
// is FMP's close-over-previous-close percent change for that day.
type DailyBar struct {
	Symbol        string  `json:"symbol"`
	Date          string  `json:"date"`
	Close         float64 `json:"close"`
	ChangePercent float64 `json:"changePercent"`
}

type Quote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ChangePercentage float64 `json:"changePercentage"`
}

type RatingSnapshot struct {
	Symbol                  string  `json:"symbol"`
	Rating                  string  `json:"rating"`
	DiscountedCashFlowScore float64 `json:"discountedCashFlowScore"`
	ReturnOnAssetsScore     float64 `json:"returnOnAssetsScore"`
	DebtToEquityScore       float64 `json:"debtToEquityScore"`
	PriceToEarningsScore    float64 `json:"priceToEarningsScore"`
	PriceToBookScore        float64 `json:"priceToBookScore"`
}

// HistoricalPrices returns the daily bars for symbol between from and to
// (inclusive), as reported by FMP.
func (c Client) HistoricalPrices(ctx context.Context, symbol string, from, to time.Time) ([]DailyBar, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("from", from.Format(time.DateOnly))
	params.Set("to", to.Format(time.DateOnly))

	out := []DailyBar{}
	if err := c.get(ctx, "/historical-price-eod/full", params, &out); err != nil {
		return nil, fmt.Errorf("failed to get historical prices for %s: %w", symbol, err)
	}

	return out, nil
}

// GetQuote returns the live quote for a single symbol, typically an index
// symbol like ^GSPC. FMP responds with a one-element array.
func (c Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	out := []Quote{}
	if err := c.get(ctx, "/quote", params, &out); err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fmp returned no quote for %s", symbol)
	}

	return &out[0], nil
}

// GetRatingSnapshot returns the current analyst rating scores for symbol.
func (c Client) GetRatingSnapshot(ctx context.Context, symbol string) (*RatingSnapshot, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	out := []RatingSnapshot{}
	if err := c.get(ctx, "/ratings-snapshot", params, &out); err != nil {
		return nil, fmt.Errorf("failed to get rating snapshot for %s: %w", symbol, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fmp returned no rating for %s", symbol)
	}

	return &out[0], nil
}

func (c Client) get(ctx context.Context, endpoint string, params url.Values, dest interface{}) error {
	params.Set("apikey", c.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseUrl+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received status code %d: %s", response.StatusCode, string(responseBytes))
	}

	if err := json.Unmarshal(responseBytes, dest); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
