package matching

import (
	"math"
	"time"
)

const (
	ReasonNoVerificationData = "NO_VERIFICATION_DATA"
	ReasonRecentlyVerified   = "RECENTLY_VERIFIED"
	ReasonModeratelyFresh    = "MODERATELY_FRESH"
	ReasonVerificationAging  = "VERIFICATION_AGING"
	ReasonStaleDataPenalty   = "STALE_DATA_PENALTY"

	maxFreshnessDays   = 180
	staleThresholdDays = 365
	stalePenalty       = 0.2
)

// ScoreFreshness scores data currency from every verification timestamp on
// the clinic record, its access rules, services and pricing. The score
// decays linearly from the most recent timestamp; a record whose oldest
// timestamp is over a year old takes an additional flat penalty.
func ScoreFreshness(clinic CandidateClinic, now time.Time) ScorerResult {
	var timestamps []time.Time

	if clinic.LastVerifiedAt != nil {
		timestamps = append(timestamps, *clinic.LastVerifiedAt)
	}
	if clinic.AccessRules != nil && clinic.AccessRules.LastVerifiedAt != nil {
		timestamps = append(timestamps, *clinic.AccessRules.LastVerifiedAt)
	}
	for _, s := range clinic.Services {
		if s.LastVerifiedAt != nil {
			timestamps = append(timestamps, *s.LastVerifiedAt)
		}
	}
	for _, p := range clinic.Pricing {
		if p.LastVerifiedAt != nil {
			timestamps = append(timestamps, *p.LastVerifiedAt)
		}
	}

	if len(timestamps) == 0 {
		return ScorerResult{Score: 0.3, ReasonCodes: []string{ReasonNoVerificationData}}
	}

	mostRecent := timestamps[0]
	oldest := timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.After(mostRecent) {
			mostRecent = ts
		}
		if ts.Before(oldest) {
			oldest = ts
		}
	}

	var codes []string
	daysSinceRecent := now.Sub(mostRecent).Hours() / 24
	score := math.Max(0, 1-daysSinceRecent/maxFreshnessDays)

	switch {
	case daysSinceRecent <= 30:
		codes = append(codes, ReasonRecentlyVerified)
	case daysSinceRecent <= 90:
		codes = append(codes, ReasonModeratelyFresh)
	default:
		codes = append(codes, ReasonVerificationAging)
	}

	daysSinceOldest := now.Sub(oldest).Hours() / 24
	if daysSinceOldest > staleThresholdDays {
		score = math.Max(0, score-stalePenalty)
		codes = append(codes, ReasonStaleDataPenalty)
	}

	return ScorerResult{Score: math.Min(score, 1.0), ReasonCodes: codes}
}
