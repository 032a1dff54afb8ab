package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	assert.Equal(t, BucketBestMatch, BucketFor(0.95))
	assert.Equal(t, BucketBestMatch, BucketFor(0.70))
	assert.Equal(t, BucketGoodMatch, BucketFor(0.69))
	assert.Equal(t, BucketGoodMatch, BucketFor(0.45))
	assert.Equal(t, BucketOtherOptions, BucketFor(0.44))
	assert.Equal(t, BucketOtherOptions, BucketFor(0))
}

func TestAssignBuckets(t *testing.T) {
	scored := []ScoredClinic{
		{ClinicID: clinicID(1), TotalScore: 0.8},
		{ClinicID: clinicID(2), TotalScore: 0.5},
		{ClinicID: clinicID(3), TotalScore: 0.2},
	}

	bucketed := AssignBuckets(scored)
	assert.Equal(t, BucketBestMatch, bucketed[0].Bucket)
	assert.Equal(t, BucketGoodMatch, bucketed[1].Bucket)
	assert.Equal(t, BucketOtherOptions, bucketed[2].Bucket)
}

func TestDisplayConfidence(t *testing.T) {
	t.Run("no unknowns is high", func(t *testing.T) {
		assert.Equal(t, ConfidenceHigh, DisplayConfidence(nil))
		assert.Equal(t, ConfidenceHigh, DisplayConfidence([]string{ReasonEligible, ReasonVeryClose}))
	})

	t.Run("a couple of unknowns is medium", func(t *testing.T) {
		assert.Equal(t, ConfidenceMedium, DisplayConfidence([]string{ReasonEligibilityUnknown}))
		assert.Equal(t, ConfidenceMedium, DisplayConfidence([]string{ReasonEligibilityUnknown, ReasonPricingUnknown}))
	})

	t.Run("three or more unknowns is low", func(t *testing.T) {
		codes := []string{ReasonEligibilityUnknown, ReasonPricingUnknown, ReasonDistanceUnknown}
		assert.Equal(t, ConfidenceLow, DisplayConfidence(codes))
	})

	t.Run("non unknown codes are ignored", func(t *testing.T) {
		codes := []string{ReasonEligible, ReasonWalkInAvailable, ReasonEligibilityUnknown}
		assert.Equal(t, ConfidenceMedium, DisplayConfidence(codes))
	})
}
