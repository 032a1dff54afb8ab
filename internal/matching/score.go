package matching

import "time"

// ScoreClinic runs all six dimension scorers and combines them with the
// supplied weights. Reason codes are concatenated across dimensions
// without deduplication so each dimension's explanation survives intact.
func ScoreClinic(clinic CandidateClinic, input MatchInput, weights Weights, now time.Time) ScoredClinic {
	eligibility := ScoreEligibility(clinic, input)
	serviceMatch := ScoreServiceMatch(clinic, input)
	access := ScoreAccess(clinic, input)
	cost := ScoreCost(clinic, input)
	distance := ScoreDistance(clinic, input)
	freshness := ScoreFreshness(clinic, now)

	breakdown := ScoreBreakdown{
		Eligibility:  clamp01(eligibility.Score),
		ServiceMatch: clamp01(serviceMatch.Score),
		Access:       clamp01(access.Score),
		Cost:         clamp01(cost.Score),
		Distance:     clamp01(distance.Score),
		Freshness:    clamp01(freshness.Score),
	}

	total := breakdown.Eligibility*weights.Eligibility +
		breakdown.ServiceMatch*weights.ServiceMatch +
		breakdown.Access*weights.Access +
		breakdown.Cost*weights.Cost +
		breakdown.Distance*weights.Distance +
		breakdown.Freshness*weights.Freshness

	var codes []string
	codes = append(codes, eligibility.ReasonCodes...)
	codes = append(codes, serviceMatch.ReasonCodes...)
	codes = append(codes, access.ReasonCodes...)
	codes = append(codes, cost.ReasonCodes...)
	codes = append(codes, distance.ReasonCodes...)
	codes = append(codes, freshness.ReasonCodes...)

	return ScoredClinic{
		ClinicID:    clinic.ID,
		TotalScore:  total,
		Breakdown:   breakdown,
		ReasonCodes: codes,
	}
}
