package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{950_000_000, "$0.95B"},
		{1_000_000_000, "$1.00B"},
		{2_345_000_000, "$2.35B"},
		{1_200_000, "$1.20M"},
		{941_000_000, "$941.00M"},
		{1_500, "$1.50K"},
		{500, "$500.00"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.in), "FormatUSD(%v)", tt.in)
	}
}

func TestFormatUSDCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{941_000_000, "$941M"},
		{1_500_000_000, "$1.5B"},
		{1_000_000, "$1M"},
		{2_500, "$2.5K"},
		{941_500_000, "$941.5M"},
		{750, "$750.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSDCompact(tt.in), "FormatUSDCompact(%v)", tt.in)
	}
}
