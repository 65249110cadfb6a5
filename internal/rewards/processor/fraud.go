package processor

import "time"

// Fraud scoring weights. Signals are additive and the total is capped at 1.0;
// anything above FraudThreshold is rejected outright.
const (
	FraudThreshold = 0.8

	ipMismatchScore        = 0.3
	userAgentMismatchScore = 0.2
	fastConversionScore    = 0.4
	quickConversionScore   = 0.2
	velocityScore          = 0.3

	fastConversionWindow  = 60 * time.Second
	quickConversionWindow = 300 * time.Second

	velocityWindow    = 24 * time.Hour
	velocityRewardCap = 5
)

// FraudSignals holds the raw observations a reward line is scored on
type FraudSignals struct {
	// IPMismatch is true when the purchase came from a different IP than the
	// attributed visit.
	IPMismatch bool
	// UserAgentMismatch is true when the purchase user agent differs from the
	// attributed visit's.
	UserAgentMismatch bool
	// TimeSinceVisit is the delay between the attributed visit and the purchase
	TimeSinceVisit time.Duration
	// RecentRewardCount is how many rewards the link already produced inside
	// the velocity window.
	RecentRewardCount int
}

// ScoreFraud computes the additive fraud score in [0, 1] for one reward line
func ScoreFraud(signals FraudSignals) float64 {
	score := 0.0
	if signals.IPMismatch {
		score += ipMismatchScore
	}
	if signals.UserAgentMismatch {
		score += userAgentMismatchScore
	}
	if signals.TimeSinceVisit < fastConversionWindow {
		score += fastConversionScore
	} else if signals.TimeSinceVisit < quickConversionWindow {
		score += quickConversionScore
	}
	if signals.RecentRewardCount > velocityRewardCap {
		score += velocityScore
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
