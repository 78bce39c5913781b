package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"stockfolio/internal/domain"
	"time"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

func StrPointer(s string) *string {
	return &s
}

func Int32Pointer(i int32) *int32 {
	return &i
}

func Int64Pointer(i int64) *int64 {
	return &i
}

func FloatPointer(f float64) *float64 {
	return &f
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

// Round2 implements the accepted floating rounding policy: every monetary
// figure is rounded to 2 decimals at the point of computation and again at
// aggregation. Cent-level drift versus fixed-point math is expected.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

type Secrets struct {
	FmpApiKey string        `json:"fmp"`
	Alpaca    AlpacaSecrets `json:"alpaca"`
	Db        DbSecrets     `json:"db"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("STOCKFOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("STOCKFOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}

// PortfolioConfig is process-lifetime configuration, constructed once and
// never mutated.
type PortfolioConfig struct {
	BenchmarkSymbol   string
	IndexSymbols      []string
	RatingAllowList   map[string]bool
	RequestInterval   time.Duration
	PerformanceWindow int
	MarketTickers     []domain.MarketTicker
}

func DefaultPortfolioConfig() PortfolioConfig {
	return PortfolioConfig{
		BenchmarkSymbol: "SPY",
		IndexSymbols:    []string{"^GSPC", "^IXIC", "^DJI"},
		RatingAllowList: map[string]bool{
			"AAPL": true, "MSFT": true, "GOOG": true, "AMZN": true,
			"NVDA": true, "META": true, "TSLA": true, "SPY": true,
		},
		RequestInterval:   300 * time.Millisecond,
		PerformanceWindow: 30,
		MarketTickers: []domain.MarketTicker{
			{Symbol: "AAPL", AssetClass: "STOCKS"},
			{Symbol: "SPY", AssetClass: "ETF"},
			{Symbol: "VFIAX", AssetClass: "MUTUALFUNDS"},
		},
	}
}
