package matching

import (
	"math"

	"dental-navigator/internal/domain/entity"
)

const (
	ReasonServiceDataMissing     = "SERVICE_DATA_MISSING"
	ReasonAllPrimaryServices     = "ALL_PRIMARY_SERVICES"
	ReasonPartialPrimaryServices = "PARTIAL_PRIMARY_SERVICES"
	ReasonHasSecondaryServices   = "HAS_SECONDARY_SERVICES"
)

// ScoreServiceMatch scores how well the clinic's offered services cover the
// complaint's clinically relevant service types. An empty service list is
// scored as unknown (0.5) even though the hard filter lets it through;
// missing service data is a gap, not a rejection.
func ScoreServiceMatch(clinic CandidateClinic, input MatchInput) ScorerResult {
	if len(clinic.Services) == 0 {
		return ScorerResult{Score: 0.5, ReasonCodes: []string{ReasonServiceDataMissing}}
	}

	mapping := ServicesForComplaint(input.ChiefComplaint)
	var codes []string

	matchedPrimary := 0
	for _, s := range mapping.Primary {
		if clinicOffersService(clinic, s, input) {
			matchedPrimary++
		}
	}

	primaryScore := 0.0
	if len(mapping.Primary) > 0 {
		primaryScore = float64(matchedPrimary) / float64(len(mapping.Primary))
	}

	if matchedPrimary == len(mapping.Primary) {
		codes = append(codes, ReasonAllPrimaryServices)
	} else if matchedPrimary > 0 {
		codes = append(codes, ReasonPartialPrimaryServices)
	}

	matchedSecondary := 0
	for _, s := range mapping.Secondary {
		if clinicOffersService(clinic, s, input) {
			matchedSecondary++
		}
	}
	secondaryBonus := math.Min(float64(matchedSecondary)*0.1, 0.3)
	if matchedSecondary > 0 {
		codes = append(codes, ReasonHasSecondaryServices)
	}

	score := math.Min(primaryScore+secondaryBonus, 1.0)
	return ScorerResult{Score: score, ReasonCodes: codes}
}

func clinicOffersService(clinic CandidateClinic, serviceType entity.ServiceType, input MatchInput) bool {
	for _, svc := range clinic.Services {
		if svc.ServiceType == serviceType {
			return serviceAvailableFor(svc, input.InsuranceType)
		}
	}
	return false
}
