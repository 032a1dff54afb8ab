// Package matching implements the clinic-matching pipeline: hard
// eligibility filtering, six-dimension scoring, exposure load balancing,
// and bucketing with a display-confidence estimate. Everything in this
// package is pure: it reads immutable inputs and returns fresh values, so
// a run can be repeated against the same input with identical output.
package matching

import (
	"time"

	"github.com/google/uuid"

	"dental-navigator/internal/domain/entity"
)

// MatchInput is one person's request, immutable for the duration of a run.
type MatchInput struct {
	SessionID          uuid.UUID
	ChiefComplaint     entity.ChiefComplaint
	InsuranceType      entity.InsuranceType
	MedicaidPlan       *entity.MedicaidPlan
	Urgency            entity.UrgencyLevel
	BudgetBand         *entity.BudgetBand
	TravelMode         *entity.TravelMode
	TravelTime         *entity.TravelTime
	Lat                *float64
	Lng                *float64
	LanguagePreference *string
}

// CandidateClinic is a clinic's matchable profile, detached from the store.
type CandidateClinic struct {
	ID              uuid.UUID
	Name            string
	ClinicType      string
	City            *string
	Lat             *float64
	Lng             *float64
	Active          bool
	Languages       []string
	NearTransitStop bool
	LastVerifiedAt  *time.Time

	AccessRules   *AccessRules
	Services      []ServiceAvailability
	ServiceRules  []ServiceRule
	Pricing       []PricingEntry
	AccessTimings []AccessTiming
}

// AccessRules is the clinic-level eligibility record; nil on the candidate
// means no access data was ever recorded.
type AccessRules struct {
	AcceptsMedicaidAdults entity.EligibilityStatus
	MedicaidPlansAccepted []entity.MedicaidPlan
	AcceptsMedicare       entity.YesNoUnknown
	UninsuredWelcome      entity.EligibilityStatus
	SlidingScaleAvailable entity.YesNoUnknown
	SeesEmergencyPain     entity.EligibilityStatus
	SeesSwelling          entity.EligibilityStatus
	WalkInAllowed         entity.EligibilityStatus
	ReferralRequired      entity.YesNoUnknown
	LastVerifiedAt        *time.Time
}

type ServiceAvailability struct {
	ServiceType           entity.ServiceType
	AvailableForMedicaid  bool
	AvailableForUninsured bool
	AvailableForPrivate   bool
	NewPatientsAccepted   bool
	LastVerifiedAt        *time.Time
}

type ServiceRule struct {
	ServiceType   entity.ServiceType
	InsuranceType entity.InsuranceType
	Accepts       entity.EligibilityStatus
}

type PricingEntry struct {
	ServiceType    entity.ServiceType
	PriceMin       *float64
	PriceMax       *float64
	PricingModel   *string
	MedicaidCopay  *float64
	LastVerifiedAt *time.Time
}

type AccessTiming struct {
	ServiceType               *entity.ServiceType
	InsuranceType             *entity.InsuranceType
	NextAvailableDaysEstimate *int
}

// ScorerResult is one dimension's outcome: a score clamped to [0,1] plus
// the reason codes that explain it.
type ScorerResult struct {
	Score       float64
	ReasonCodes []string
}

// ScoreBreakdown holds the six per-dimension scores.
type ScoreBreakdown struct {
	Eligibility  float64
	ServiceMatch float64
	Access       float64
	Cost         float64
	Distance     float64
	Freshness    float64
}

// ScoredClinic is a candidate that survived the hard filter, fully scored.
type ScoredClinic struct {
	ClinicID    uuid.UUID
	TotalScore  float64
	Breakdown   ScoreBreakdown
	ReasonCodes []string
	Bucket      string
}

// RejectedClinic records why a candidate was dropped by the hard filter.
type RejectedClinic struct {
	ClinicID uuid.UUID
	Reasons  []string
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
