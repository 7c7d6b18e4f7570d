package model

import "time"

// TokenStats holds the market data extracted from the most liquid
// trading pair of the tracked token.
type TokenStats struct {
	Mcap         float64
	PriceUSD     float64
	LiquidityUSD float64
	FetchedAt    time.Time
}
