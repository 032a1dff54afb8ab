package matching

import (
	"math"

	"github.com/google/uuid"
)

const (
	ReasonLoadBalanced = "LOAD_BALANCED"

	loadBalanceThreshold  = 10
	loadBalanceMaxPenalty = 0.15
)

// LoadBalanceWindowDays is the rolling window the recommendation counts
// must cover.
const LoadBalanceWindowDays = 7

// ApplyLoadBalancing penalizes clinics recommended more than the threshold
// within the rolling window so a handful of strong profiles do not absorb
// every referral. Clinics at or under the threshold are untouched.
func ApplyLoadBalancing(scored []ScoredClinic, counts map[uuid.UUID]int) []ScoredClinic {
	adjusted := make([]ScoredClinic, 0, len(scored))
	for _, clinic := range scored {
		count := counts[clinic.ClinicID]
		if count <= loadBalanceThreshold {
			adjusted = append(adjusted, clinic)
			continue
		}

		excessRatio := float64(count-loadBalanceThreshold) / float64(loadBalanceThreshold)
		penalty := math.Min(excessRatio*loadBalanceMaxPenalty, loadBalanceMaxPenalty)

		clinic.TotalScore = clinic.TotalScore * (1 - penalty)
		clinic.ReasonCodes = append(clinic.ReasonCodes, ReasonLoadBalanced)
		adjusted = append(adjusted, clinic)
	}
	return adjusted
}
