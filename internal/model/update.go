package model

// UpdateKind identifies which of the four daily message variants applies.
type UpdateKind int

const (
	// UpdateTargetReached fires exactly once, the first day mcap >= target.
	UpdateTargetReached UpdateKind = iota
	// UpdateHoldingAbove applies on subsequent days at or above target.
	UpdateHoldingAbove
	// UpdateBelowTarget is the regular countdown day.
	UpdateBelowTarget
	// UpdateFallback applies when no market data is available.
	UpdateFallback
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateTargetReached:
		return "TARGET_REACHED"
	case UpdateHoldingAbove:
		return "HOLDING_ABOVE"
	case UpdateBelowTarget:
		return "BELOW_TARGET"
	case UpdateFallback:
		return "FALLBACK"
	default:
		return "UNKNOWN"
	}
}

// DailyUpdate is the outcome of evaluating one day against the target.
// DayCount and ReachedTarget are the values the persisted state should
// take after the post succeeds.
type DailyUpdate struct {
	Kind          UpdateKind
	DayCount      int
	ReachedTarget bool
	// Remaining is target minus mcap, set only for UpdateBelowTarget.
	Remaining float64
}
