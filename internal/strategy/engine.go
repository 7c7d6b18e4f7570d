// Package strategy decides which daily update variant to post.
package strategy

import "pigeonwatch/internal/model"

// Evaluate maps the persisted state and the latest market data to a daily
// update. Pure function: nothing here touches disk or the clock.
//
// Rules:
//   - no data            -> fallback, the countdown still advances
//   - mcap >= target     -> "target reached" the first time, irreversibly
//     flipping reached_target; "holding above" on subsequent days; the
//     day count freezes at the value accumulated while below target
//   - mcap < target      -> regular countdown day, day count +1
func Evaluate(st model.BotState, stats *model.TokenStats, target float64) model.DailyUpdate {
	if stats == nil {
		return model.DailyUpdate{
			Kind:          model.UpdateFallback,
			DayCount:      st.DayCount + 1,
			ReachedTarget: st.ReachedTarget,
		}
	}

	switch {
	case stats.Mcap >= target && !st.ReachedTarget:
		return model.DailyUpdate{
			Kind:          model.UpdateTargetReached,
			DayCount:      st.DayCount,
			ReachedTarget: true,
		}
	case stats.Mcap >= target:
		return model.DailyUpdate{
			Kind:          model.UpdateHoldingAbove,
			DayCount:      st.DayCount,
			ReachedTarget: true,
		}
	default:
		return model.DailyUpdate{
			Kind:          model.UpdateBelowTarget,
			DayCount:      st.DayCount + 1,
			ReachedTarget: st.ReachedTarget,
			Remaining:     target - stats.Mcap,
		}
	}
}
