package collector

import (
	"context"
	"time"

	"pigeonwatch/internal/model"
)

// Fetcher defines the interface for fetching token market data.
type Fetcher interface {
	FetchTokenStats(ctx context.Context, tokenAddress string) (*model.TokenStats, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Stats *model.TokenStats
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchTokenStats(_ context.Context, _ string) (*model.TokenStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stats != nil {
		s := *m.Stats
		return &s, nil
	}
	return &model.TokenStats{
		Mcap:         500_000_000,
		PriceUSD:     0.0005,
		LiquidityUSD: 2_000_000,
		FetchedAt:    time.Now(),
	}, nil
}
