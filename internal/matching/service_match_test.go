package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dental-navigator/internal/domain/entity"
)

func TestScoreServiceMatch(t *testing.T) {
	checkupInput := func() MatchInput {
		input := medicaidInput()
		input.ChiefComplaint = entity.ComplaintCleaningCheckup
		return input
	}

	t.Run("no recorded services scores unknown", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Services = nil

		result := ScoreServiceMatch(clinic, checkupInput())
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Equal(t, []string{ReasonServiceDataMissing}, result.ReasonCodes)
	})

	t.Run("full primary plus secondary caps at one", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Services = []ServiceAvailability{
			availableService(entity.ServiceCleaning),
			availableService(entity.ServiceExam),
			availableService(entity.ServiceXray),
		}

		result := ScoreServiceMatch(clinic, checkupInput())
		assert.InDelta(t, 1.0, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonAllPrimaryServices)
		assert.Contains(t, result.ReasonCodes, ReasonHasSecondaryServices)
	})

	t.Run("partial primary coverage", func(t *testing.T) {
		clinic := baseCandidate(1)
		clinic.Services = []ServiceAvailability{availableService(entity.ServiceExam)}

		result := ScoreServiceMatch(clinic, checkupInput())
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonPartialPrimaryServices)
	})

	t.Run("availability gated by insurance type", func(t *testing.T) {
		cleaning := availableService(entity.ServiceCleaning)
		cleaning.AvailableForMedicaid = false

		clinic := baseCandidate(1)
		clinic.Services = []ServiceAvailability{cleaning, availableService(entity.ServiceExam)}

		result := ScoreServiceMatch(clinic, checkupInput())
		assert.InDelta(t, 0.5, result.Score, 1e-9)
	})

	t.Run("secondary bonus is capped", func(t *testing.T) {
		// PAIN has four secondary services; only 0.3 of bonus may apply.
		clinic := baseCandidate(1)
		clinic.Services = []ServiceAvailability{
			availableService(entity.ServiceXray),
			availableService(entity.ServiceFilling),
			availableService(entity.ServiceRootCanal),
			availableService(entity.ServiceExtractionSimple),
		}

		result := ScoreServiceMatch(clinic, medicaidInput())
		assert.InDelta(t, 0.3, result.Score, 1e-9)
		assert.Contains(t, result.ReasonCodes, ReasonHasSecondaryServices)
	})
}
