package matching

import (
	"math"

	"dental-navigator/internal/domain/entity"
)

const (
	ReasonWalkInAvailable  = "WALK_IN_AVAILABLE"
	ReasonWalkInLimited    = "WALK_IN_LIMITED"
	ReasonSameDayAvailable = "SAME_DAY_AVAILABLE"
	ReasonShortWait        = "SHORT_WAIT"
	ReasonModerateWait     = "MODERATE_WAIT"
	ReasonLongWait         = "LONG_WAIT"
	ReasonReferralRequired = "REFERRAL_REQUIRED"
)

// ScoreAccess scores how quickly the requester could actually be seen,
// combining walk-in policy with estimated wait data. The better of the two
// signals wins. For JUST_EXPLORING urgency the final score is flattened
// into the 0.7–1.0 range since speed barely matters.
func ScoreAccess(clinic CandidateClinic, input MatchInput) ScorerResult {
	var codes []string
	score := 0.5

	rules := clinic.AccessRules
	sameDay := input.Urgency == entity.UrgencyToday

	if rules != nil {
		switch rules.WalkInAllowed {
		case entity.EligibilityYes:
			codes = append(codes, ReasonWalkInAvailable)
			if sameDay {
				score = 1.0
			} else {
				score = 0.8
			}
		case entity.EligibilityLimited:
			codes = append(codes, ReasonWalkInLimited)
			if sameDay {
				score = 0.7
			} else {
				score = 0.6
			}
		}
	}

	if days, ok := firstWaitEstimate(clinic.AccessTimings); ok {
		waitScore := waitScoreFor(days, input.Urgency)
		if waitScore > score {
			score = waitScore
		}

		switch {
		case days == 0:
			codes = append(codes, ReasonSameDayAvailable)
		case days <= 3:
			codes = append(codes, ReasonShortWait)
		case days <= 14:
			codes = append(codes, ReasonModerateWait)
		default:
			codes = append(codes, ReasonLongWait)
		}
	}

	if rules != nil && rules.ReferralRequired == entity.AnswerYes {
		score *= 0.7
		codes = append(codes, ReasonReferralRequired)
	}

	if input.Urgency == entity.UrgencyJustExploring {
		score = 0.7 + score*0.3
	}

	return ScorerResult{Score: math.Min(score, 1.0), ReasonCodes: codes}
}

func firstWaitEstimate(timings []AccessTiming) (int, bool) {
	for _, t := range timings {
		if t.NextAvailableDaysEstimate != nil {
			return *t.NextAvailableDaysEstimate, true
		}
	}
	return 0, false
}

// waitScoreFor maps an estimated wait in days onto [0,1] with urgency-
// specific steps.
func waitScoreFor(days int, urgency entity.UrgencyLevel) float64 {
	switch urgency {
	case entity.UrgencyToday:
		switch {
		case days == 0:
			return 1.0
		case days <= 1:
			return 0.6
		default:
			return 0.2
		}
	case entity.UrgencyWithin3Days:
		switch {
		case days <= 1:
			return 1.0
		case days <= 3:
			return 0.8
		case days <= 7:
			return 0.5
		default:
			return 0.3
		}
	case entity.UrgencyWithin2Weeks:
		switch {
		case days <= 3:
			return 1.0
		case days <= 14:
			return 0.8
		case days <= 30:
			return 0.5
		default:
			return 0.3
		}
	default: // JUST_EXPLORING
		switch {
		case days <= 7:
			return 1.0
		case days <= 30:
			return 0.8
		default:
			return 0.6
		}
	}
}
