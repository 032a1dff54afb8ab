package matching

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dental-navigator/internal/domain/entity"
)

// fixedNow keeps freshness scoring deterministic across test runs.
var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clinicID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("11111111-1111-1111-1111-1111111111%02d", n))
}

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func sptr(s string) *string { return &s }

func tptr(t time.Time) *time.Time { return &t }

func planPtr(p entity.MedicaidPlan) *entity.MedicaidPlan { return &p }

func modePtr(m entity.TravelMode) *entity.TravelMode { return &m }

func travelTimePtr(t entity.TravelTime) *entity.TravelTime { return &t }

func bandPtr(b entity.BudgetBand) *entity.BudgetBand { return &b }

func daysAgo(n int) *time.Time {
	t := fixedNow.AddDate(0, 0, -n)
	return &t
}

// medicaidInput is a Medicaid requester in central Baltimore with tooth
// pain, needing care today, driving up to an hour.
func medicaidInput() MatchInput {
	return MatchInput{
		SessionID:      uuid.New(),
		ChiefComplaint: entity.ComplaintPain,
		InsuranceType:  entity.InsuranceMedicaid,
		Urgency:        entity.UrgencyToday,
		TravelMode:     modePtr(entity.TravelDrives),
		TravelTime:     travelTimePtr(entity.TravelUpTo60Min),
		Lat:            fptr(39.29),
		Lng:            fptr(-76.61),
	}
}

// baseCandidate is an active clinic close to the test requester that
// accepts everything and offers the pain-relevant services.
func baseCandidate(n int) CandidateClinic {
	return CandidateClinic{
		ID:             clinicID(n),
		Name:           fmt.Sprintf("Clinic %d", n),
		ClinicType:     "FQHC",
		Active:         true,
		Lat:            fptr(39.30),
		Lng:            fptr(-76.61),
		LastVerifiedAt: daysAgo(10),
		AccessRules: &AccessRules{
			AcceptsMedicaidAdults: entity.EligibilityYes,
			AcceptsMedicare:       entity.AnswerYes,
			UninsuredWelcome:      entity.EligibilityYes,
			SlidingScaleAvailable: entity.AnswerNo,
			WalkInAllowed:         entity.EligibilityUnknown,
			ReferralRequired:      entity.AnswerNo,
			LastVerifiedAt:        daysAgo(10),
		},
		Services: []ServiceAvailability{
			availableService(entity.ServiceEmergencyVisit),
			availableService(entity.ServiceExam),
			availableService(entity.ServiceXray),
		},
	}
}

func availableService(t entity.ServiceType) ServiceAvailability {
	return ServiceAvailability{
		ServiceType:           t,
		AvailableForMedicaid:  true,
		AvailableForUninsured: true,
		AvailableForPrivate:   true,
		NewPatientsAccepted:   true,
		LastVerifiedAt:        daysAgo(10),
	}
}
