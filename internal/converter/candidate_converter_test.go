package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-navigator/internal/domain/entity"
)

func TestSessionToMatchInput(t *testing.T) {
	plan := entity.PlanPriorityPartners
	band := entity.BudgetUnder50
	mode := entity.TravelPublicTransit
	travelTime := entity.TravelUpTo30Min
	lat, lng := 39.29, -76.61

	session := &entity.Session{
		ID:             uuid.New(),
		ChiefComplaint: entity.ComplaintPain,
		InsuranceType:  entity.InsuranceMedicaid,
		MedicaidPlan:   &plan,
		Urgency:        entity.UrgencyToday,
		BudgetBand:     &band,
		TravelMode:     &mode,
		TravelTime:     &travelTime,
		LatRound:       &lat,
		LngRound:       &lng,
	}

	input := SessionToMatchInput(session)
	assert.Equal(t, session.ID, input.SessionID)
	assert.Equal(t, entity.ComplaintPain, input.ChiefComplaint)
	assert.Equal(t, entity.InsuranceMedicaid, input.InsuranceType)
	require.NotNil(t, input.MedicaidPlan)
	assert.Equal(t, plan, *input.MedicaidPlan)
	require.NotNil(t, input.Lat)
	assert.InDelta(t, lat, *input.Lat, 1e-9)
}

func TestClinicToCandidate(t *testing.T) {
	verified := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	priceMin := decimal.NewFromInt(25)
	priceMax := decimal.NewFromFloat(99.50)

	clinic := &entity.Clinic{
		ID:                 uuid.New(),
		Name:               "Harbor Dental",
		ClinicType:         "FQHC",
		Active:             true,
		LanguagesAvailable: entity.StringList{"ENGLISH", "SPANISH"},
		NearTransitStop:    true,
		LastVerifiedAt:     &verified,
		AccessRule: &entity.AccessRule{
			AcceptsMedicaidAdults: entity.EligibilityYes,
			MedicaidPlansAccepted: entity.PlanList{entity.PlanAmerigroup},
			UninsuredWelcome:      entity.EligibilityLimited,
		},
		Services: []entity.ClinicService{
			{ServiceType: entity.ServiceExam, AvailableForMedicaid: true},
		},
		ServiceRules: []entity.ClinicServiceRule{
			{ServiceType: entity.ServiceExam, InsuranceType: entity.InsuranceMedicaid, Accepts: entity.EligibilityYes},
		},
		Pricing: []entity.PricingEntry{
			{ServiceType: entity.ServiceExam, PriceMin: &priceMin, PriceMax: &priceMax},
		},
		AccessTimings: []entity.AccessTiming{
			{NextAvailableDaysEstimate: intPtr(3)},
		},
	}

	candidate := ClinicToCandidate(clinic)

	assert.Equal(t, clinic.ID, candidate.ID)
	assert.True(t, candidate.Active)
	assert.Equal(t, []string{"ENGLISH", "SPANISH"}, candidate.Languages)

	require.NotNil(t, candidate.AccessRules)
	assert.Equal(t, entity.EligibilityYes, candidate.AccessRules.AcceptsMedicaidAdults)
	assert.Equal(t, []entity.MedicaidPlan{entity.PlanAmerigroup}, candidate.AccessRules.MedicaidPlansAccepted)

	require.Len(t, candidate.Services, 1)
	assert.True(t, candidate.Services[0].AvailableForMedicaid)

	require.Len(t, candidate.Pricing, 1)
	require.NotNil(t, candidate.Pricing[0].PriceMin)
	assert.InDelta(t, 25, *candidate.Pricing[0].PriceMin, 1e-9)
	require.NotNil(t, candidate.Pricing[0].PriceMax)
	assert.InDelta(t, 99.50, *candidate.Pricing[0].PriceMax, 1e-9)

	require.Len(t, candidate.AccessTimings, 1)
	assert.Equal(t, 3, *candidate.AccessTimings[0].NextAvailableDaysEstimate)
}

func TestClinicToCandidateWithoutRelations(t *testing.T) {
	clinic := &entity.Clinic{ID: uuid.New(), Name: "Bare Clinic", Active: true}
	candidate := ClinicToCandidate(clinic)

	assert.Nil(t, candidate.AccessRules)
	assert.Empty(t, candidate.Services)
	assert.Empty(t, candidate.Pricing)
}

func intPtr(v int) *int { return &v }
