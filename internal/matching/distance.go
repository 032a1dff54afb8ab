package matching

import (
	"math"

	"dental-navigator/internal/domain/entity"
)

const (
	ReasonDistanceUnknown  = "DISTANCE_UNKNOWN"
	ReasonVeryClose        = "VERY_CLOSE"
	ReasonNearby           = "NEARBY"
	ReasonModerateDistance = "MODERATE_DISTANCE"
	ReasonFar              = "FAR"
	ReasonNearTransit      = "NEAR_TRANSIT"
)

// ScoreDistance scores travel burden with a linear decay out to the
// requester's travel radius. Missing coordinates on either side score a
// neutral 0.5.
func ScoreDistance(clinic CandidateClinic, input MatchInput) ScorerResult {
	if input.Lat == nil || input.Lng == nil || clinic.Lat == nil || clinic.Lng == nil {
		return ScorerResult{Score: 0.5, ReasonCodes: []string{ReasonDistanceUnknown}}
	}

	var codes []string
	maxRadius := RadiusMiles(input.TravelMode, input.TravelTime)
	distance := DistanceMiles(*input.Lat, *input.Lng, *clinic.Lat, *clinic.Lng)

	score := math.Max(0, 1-distance/maxRadius)

	switch {
	case distance <= 5:
		codes = append(codes, ReasonVeryClose)
	case distance <= 15:
		codes = append(codes, ReasonNearby)
	case distance <= 30:
		codes = append(codes, ReasonModerateDistance)
	default:
		codes = append(codes, ReasonFar)
	}

	// Informational only, does not change the score.
	if input.TravelMode != nil && *input.TravelMode == entity.TravelPublicTransit && clinic.NearTransitStop {
		codes = append(codes, ReasonNearTransit)
	}

	return ScorerResult{Score: math.Min(score, 1.0), ReasonCodes: codes}
}
