package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dental-navigator/internal/domain/entity"
)

func TestScoreDistance(t *testing.T) {
	t.Run("missing coordinates is neutral", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Lat = nil
		clinic.Lng = nil

		result := ScoreDistance(clinic, medicaidInput())
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Equal(t, []string{ReasonDistanceUnknown}, result.ReasonCodes)
	})

	t.Run("same location scores full", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Lat = fptr(39.29)
		clinic.Lng = fptr(-76.61)

		result := ScoreDistance(clinic, medicaidInput())
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonVeryClose)
	})

	t.Run("linear decay inside the radius", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Lat = fptr(39.59) // ~20.7 miles, radius 30

		result := ScoreDistance(clinic, medicaidInput())
		assert.InDelta(t, 0.31, result.Score, 0.03)
		assert.Contains(t, result.ReasonCodes, ReasonModerateDistance)
	})

	t.Run("beyond the radius scores zero", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Lat = fptr(40.50) // ~83 miles

		result := ScoreDistance(clinic, medicaidInput())
		assert.InDelta(t, 0.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonFar)
	})

	t.Run("transit stop noted for transit riders", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.NearTransitStop = true

		input := medicaidInput()
		input.TravelMode = modePtr(entity.TravelPublicTransit)

		result := ScoreDistance(clinic, input)
		assert.Contains(t, result.ReasonCodes, ReasonNearTransit)
	})

	t.Run("transit stop irrelevant for drivers", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.NearTransitStop = true

		result := ScoreDistance(clinic, medicaidInput())
		assert.NotContains(t, result.ReasonCodes, ReasonNearTransit)
	})
}
