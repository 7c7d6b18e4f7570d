package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"pigeonwatch/internal/model"
)

// DexScreenerFetcher implements Fetcher using the public DexScreener API.
type DexScreenerFetcher struct {
	BaseURL string
	Client  *http.Client

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewDexScreenerFetcher creates a fetcher with optional proxy support.
// Requests are capped at 60/min and guarded by a circuit breaker so a
// flapping API reads as "no data" instead of hammering the endpoint.
func NewDexScreenerFetcher(baseURL, proxyURL string) *DexScreenerFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "DexScreenerAPI",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     5 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &DexScreenerFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/60), 1),
		breaker: breaker,
	}
}

func (f *DexScreenerFetcher) Name() string { return "dexscreener" }

// dexPair is the subset of the DexScreener pair schema the bot reads.
// priceUsd is a decimal string; fdv and liquidity.usd are numbers.
type dexPair struct {
	PriceUSD  string  `json:"priceUsd"`
	FDV       float64 `json:"fdv"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
}

type dexTokenResponse struct {
	SchemaVersion string    `json:"schemaVersion"`
	Pairs         []dexPair `json:"pairs"`
}

// FetchTokenStats returns market data from the first (most liquid) pair.
// An empty pair list or malformed payload is an error; callers treat any
// error as "no data".
func (f *DexScreenerFetcher) FetchTokenStats(ctx context.Context, tokenAddress string) (*model.TokenStats, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.fetch(ctx, tokenAddress)
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.TokenStats), nil
}

func (f *DexScreenerFetcher) fetch(ctx context.Context, tokenAddress string) (*model.TokenStats, error) {
	endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", f.BaseURL, tokenAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch token stats: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch token stats: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload dexTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if len(payload.Pairs) == 0 {
		return nil, fmt.Errorf("no trading pairs for token %s", tokenAddress)
	}

	// First pair is the most liquid one.
	pair := payload.Pairs[0]
	price, _ := strconv.ParseFloat(pair.PriceUSD, 64)

	return &model.TokenStats{
		Mcap:         pair.FDV,
		PriceUSD:     price,
		LiquidityUSD: pair.Liquidity.USD,
		FetchedAt:    time.Now(),
	}, nil
}
