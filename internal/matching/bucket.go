package matching

// Result buckets, thresholds inclusive at the lower edge.
const (
	BucketBestMatch    = "BEST_MATCH"
	BucketGoodMatch    = "GOOD_MATCH"
	BucketOtherOptions = "OTHER_OPTIONS"

	bestMatchThreshold = 0.70
	goodMatchThreshold = 0.45
)

// Display confidence labels.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// unknownDataCodes are the reason codes that mark a dimension scored from
// missing data. Display confidence counts how many appear on a clinic.
var unknownDataCodes = map[string]struct{}{
	ReasonEligibilityUnknown: {},
	ReasonDistanceUnknown:    {},
	ReasonPricingUnknown:     {},
	ReasonServiceDataMissing: {},
	ReasonNoVerificationData: {},
}

// AssignBuckets labels each scored clinic with its tier.
func AssignBuckets(scored []ScoredClinic) []ScoredClinic {
	bucketed := make([]ScoredClinic, 0, len(scored))
	for _, clinic := range scored {
		clinic.Bucket = BucketFor(clinic.TotalScore)
		bucketed = append(bucketed, clinic)
	}
	return bucketed
}

func BucketFor(score float64) string {
	switch {
	case score >= bestMatchThreshold:
		return BucketBestMatch
	case score >= goodMatchThreshold:
		return BucketGoodMatch
	default:
		return BucketOtherOptions
	}
}

// DisplayConfidence derives the coarse HIGH/MEDIUM/LOW label from how many
// unknown-data markers a clinic accumulated across its dimensions.
func DisplayConfidence(reasonCodes []string) string {
	unknown := 0
	for _, code := range reasonCodes {
		if _, ok := unknownDataCodes[code]; ok {
			unknown++
		}
	}
	switch {
	case unknown == 0:
		return ConfidenceHigh
	case unknown <= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
