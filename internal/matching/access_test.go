package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dental-navigator/internal/domain/entity"
)

func TestScoreAccess(t *testing.T) {
	t.Run("no signals is neutral", func(t *testing.T) {
		result := ScoreAccess(baseCandidate(1), medicaidInput())
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Empty(t, result.ReasonCodes)
	})

	t.Run("walk in with same day urgency", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.WalkInAllowed = entity.EligibilityYes

		result := ScoreAccess(clinic, medicaidInput())
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonWalkInAvailable)
	})

	t.Run("walk in without same day urgency", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.WalkInAllowed = entity.EligibilityYes

		input := medicaidInput()
		input.Urgency = entity.UrgencyWithin2Weeks

		result := ScoreAccess(clinic, input)
		assert.InDelta(t, 0.8, result.Score, 1e-9)
	})

	t.Run("limited walk in", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.WalkInAllowed = entity.EligibilityLimited

		result := ScoreAccess(clinic, medicaidInput())
		assert.InDelta(t, 0.7, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonWalkInLimited)
	})

	t.Run("same day estimate beats neutral base", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessTimings = []AccessTiming{{NextAvailableDaysEstimate: iptr(0)}}

		result := ScoreAccess(clinic, medicaidInput())
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonSameDayAvailable)
	})

	t.Run("short wait for three day urgency", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessTimings = []AccessTiming{{NextAvailableDaysEstimate: iptr(2)}}

		input := medicaidInput()
		input.Urgency = entity.UrgencyWithin3Days

		result := ScoreAccess(clinic, input)
		assert.InDelta(t, 0.8, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonShortWait)
	})

	t.Run("long wait with same day urgency", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessTimings = []AccessTiming{{NextAvailableDaysEstimate: iptr(21)}}

		result := ScoreAccess(clinic, medicaidInput())
		// The 0.2 wait score loses to the 0.5 base.
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonLongWait)
	})

	t.Run("referral requirement discounts", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.AccessRules.WalkInAllowed = entity.EligibilityYes
		clinic.AccessRules.ReferralRequired = entity.AnswerYes

		input := medicaidInput()
		input.Urgency = entity.UrgencyWithin2Weeks

		result := ScoreAccess(clinic, input)
		assert.InDelta(t, 0.56, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonReferralRequired)
	})

	t.Run("exploring flattens the scale", func(t *testing.T) {
		input := medicaidInput()
		input.Urgency = entity.UrgencyJustExploring

		result := ScoreAccess(baseCandidate(1), input)
		assert.InDelta(t, 0.85, result.Score, 1e-9)
	})
}
