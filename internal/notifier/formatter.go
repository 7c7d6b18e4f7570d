package notifier

import (
	"fmt"
	"strings"
	"unicode"

	"pigeonwatch/internal/model"
)

// FormatDailyUpdate renders the daily post for the given update variant.
// stats may be nil only for the fallback variant.
func FormatDailyUpdate(u model.DailyUpdate, stats *model.TokenStats, tokenName string, target float64) string {
	targetLabel := compactAmount(target)

	switch u.Kind {
	case model.UpdateTargetReached:
		return fmt.Sprintf("🎉 %s HAS REACHED %s MCAP! 🚀\n\nCurrent Market Cap: %s\n\nIt took %d days! LFG! 🐦💎",
			strings.ToUpper(tokenName), targetLabel, FormatUSD(stats.Mcap), u.DayCount)

	case model.UpdateHoldingAbove:
		return fmt.Sprintf("Day %d - %s holding strong above %s! 💪\n\nCurrent Market Cap: %s",
			u.DayCount, capitalize(tokenName), targetLabel, FormatUSD(stats.Mcap))

	case model.UpdateBelowTarget:
		return fmt.Sprintf("Day %d of posting %s under %s mcap\n\nCurrent: %s\nTarget: $%s\nTo go: %s 🐦",
			u.DayCount, tokenName, targetLabel, FormatUSD(stats.Mcap), targetLabel, FormatUSD(u.Remaining))

	default: // model.UpdateFallback
		return fmt.Sprintf("Day %d of posting %s under %s mcap 🐦",
			u.DayCount, tokenName, targetLabel)
	}
}

// FormatStatus renders the current state and market data for the status
// command and Telegram replies.
func FormatStatus(st model.BotState, stats *model.TokenStats, tokenName string, target float64) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 %s status\n\n", capitalize(tokenName)))
	b.WriteString(fmt.Sprintf("Day count: %d\n", st.DayCount))
	b.WriteString(fmt.Sprintf("Started: %s\n", orNever(st.StartDate)))
	b.WriteString(fmt.Sprintf("Last post: %s\n", orNever(st.LastPostDate)))
	b.WriteString(fmt.Sprintf("Target: %s\n", FormatUSDCompact(target)))
	b.WriteString(fmt.Sprintf("Target reached: %v\n", st.ReachedTarget))

	if stats != nil {
		b.WriteString(fmt.Sprintf("\nMarket Cap: %s\n", FormatUSD(stats.Mcap)))
		b.WriteString(fmt.Sprintf("Price: $%.6f\n", stats.PriceUSD))
		b.WriteString(fmt.Sprintf("Liquidity: %s\n", FormatUSD(stats.LiquidityUSD)))
		if stats.Mcap < target {
			b.WriteString(fmt.Sprintf("Distance to target: %s\n", FormatUSD(target-stats.Mcap)))
		} else {
			b.WriteString("🎉 Above target!\n")
		}
	} else {
		b.WriteString("\nMarket data unavailable\n")
	}

	return b.String()
}

func orNever(date string) string {
	if date == "" {
		return "never"
	}
	return date
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
