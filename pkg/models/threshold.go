package models

// ThresholdMode selects how counter thresholds are compared.
type ThresholdMode int

const (
	// ModeNone performs no counter comparison.
	ModeNone ThresholdMode = iota
	// ModeLowBound alerts when the counter falls to or below a threshold.
	ModeLowBound
	// ModeHighBound alerts when the counter rises to or above a threshold.
	ModeHighBound
)

func (m ThresholdMode) String() string {
	switch m {
	case ModeLowBound:
		return "low-bound"
	case ModeHighBound:
		return "high-bound"
	default:
		return "none"
	}
}

// ThresholdConfig carries the user-supplied alerting rules for one run.
// ExpectedState, when set, overrides all counter checks: the session state
// either matches it (OK) or does not (CRITICAL). Warning and Critical are
// optional; a bound mode with neither configured performs no transition.
type ThresholdConfig struct {
	Mode          ThresholdMode
	Warning       *uint64
	Critical      *uint64
	ExpectedState *BGPState
}
