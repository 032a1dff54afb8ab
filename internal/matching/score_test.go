package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreClinic(t *testing.T) {
	result := ScoreClinic(baseCandidate(1), medicaidInput(), DefaultWeights(), fixedNow)

	assert.Equal(t, clinicID(1), result.ClinicID)
	assert.InDelta(t, 1.0, result.Breakdown.Eligibility, 1e-9)
	assert.InDelta(t, 1.0, result.Breakdown.ServiceMatch, 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown.Access, 1e-9)
	assert.InDelta(t, 1.0, result.Breakdown.Cost, 1e-9)
	assert.InDelta(t, 0.977, result.Breakdown.Distance, 0.01)
	assert.InDelta(t, 1-10.0/180, result.Breakdown.Freshness, 1e-9)

	w := DefaultWeights()
	expected := result.Breakdown.Eligibility*w.Eligibility +
		result.Breakdown.ServiceMatch*w.ServiceMatch +
		result.Breakdown.Access*w.Access +
		result.Breakdown.Cost*w.Cost +
		result.Breakdown.Distance*w.Distance +
		result.Breakdown.Freshness*w.Freshness
	assert.InDelta(t, expected, result.TotalScore, 1e-9)

	// Codes from every dimension survive the merge.
	assert.Contains(t, result.ReasonCodes, ReasonEligible)
	assert.Contains(t, result.ReasonCodes, ReasonAllPrimaryServices)
	assert.Contains(t, result.ReasonCodes, ReasonMedicaidCovered)
	assert.Contains(t, result.ReasonCodes, ReasonVeryClose)
	assert.Contains(t, result.ReasonCodes, ReasonRecentlyVerified)
}
