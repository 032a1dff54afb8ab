package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dental-navigator/internal/domain/entity"
)

func TestScoreEligibility(t *testing.T) {
	t.Run("missing access rules scores unknown", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules = nil

		result := ScoreEligibility(clinic, medicaidInput())
		assert.InDelta(t, 0.4, result.Score, 1e-9)
		assert.Equal(t, []string{ReasonEligibilityUnknown}, result.ReasonCodes)
	})

	t.Run("medicaid accepted", func(t *testing.T) {
		result := ScoreEligibility(baseCandidate(1), medicaidInput())
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonEligible)
	})

	t.Run("exact plan match noted", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.MedicaidPlansAccepted = []entity.MedicaidPlan{entity.PlanPriorityPartners}

		input := medicaidInput()
		input.MedicaidPlan = planPtr(entity.PlanPriorityPartners)

		result := ScoreEligibility(clinic, input)
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonExactPlanMatch)
	})

	t.Run("unsure plan discounts score", func(t *testing.T) {
		input := medicaidInput()
		input.MedicaidPlan = planPtr(entity.PlanUnsure)

		result := ScoreEligibility(baseCandidate(1), input)
		assert.InDelta(t, 0.8, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonPlanUnsure)
	})

	t.Run("limited uninsured welcome", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.UninsuredWelcome = entity.EligibilityLimited

		input := medicaidInput()
		input.InsuranceType = entity.InsuranceUninsuredSelfPay

		result := ScoreEligibility(clinic, input)
		assert.InDelta(t, 0.6, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonEligibilityLimited)
	})

	t.Run("medicare rejected scores zero", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.AcceptsMedicare = entity.AnswerNo

		input := medicaidInput()
		input.InsuranceType = entity.InsuranceMedicare

		result := ScoreEligibility(clinic, input)
		assert.InDelta(t, 0.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonNotEligible)
	})

	t.Run("medicare unknown scores unknown", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.AcceptsMedicare = entity.AnswerUnknown

		input := medicaidInput()
		input.InsuranceType = entity.InsuranceMedicare

		result := ScoreEligibility(clinic, input)
		assert.InDelta(t, 0.4, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonEligibilityUnknown)
	})

	t.Run("private generally accepted", func(t *testing.T) {
		input := medicaidInput()
		input.InsuranceType = entity.InsurancePrivate

		result := ScoreEligibility(baseCandidate(1), input)
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonPrivateAccepted)
	})

	t.Run("unknown medicaid status", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.AcceptsMedicaidAdults = entity.EligibilityUnknown

		result := ScoreEligibility(clinic, medicaidInput())
		assert.InDelta(t, 0.4, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonEligibilityUnknown)
	})
}
