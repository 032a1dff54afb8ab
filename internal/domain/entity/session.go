package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one anonymous intake run. Coordinates are privacy-rounded to
// two decimals before they reach this row.
type Session struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	Zip                *string        `gorm:"type:text" json:"zip,omitempty"`
	LatRound           *float64       `gorm:"type:double precision" json:"lat_round,omitempty"`
	LngRound           *float64       `gorm:"type:double precision" json:"lng_round,omitempty"`
	ChiefComplaint     ChiefComplaint `gorm:"type:text;not null;index" json:"chief_complaint"`
	InsuranceType      InsuranceType  `gorm:"type:text;not null" json:"insurance_type"`
	MedicaidPlan       *MedicaidPlan  `gorm:"type:text" json:"medicaid_plan,omitempty"`
	Urgency            UrgencyLevel   `gorm:"type:text;not null" json:"urgency"`
	BudgetBand         *BudgetBand    `gorm:"type:text" json:"budget_band,omitempty"`
	TravelMode         *TravelMode    `gorm:"type:text" json:"travel_mode,omitempty"`
	TravelTime         *TravelTime    `gorm:"type:text" json:"travel_time,omitempty"`
	LanguagePreference *string        `gorm:"type:text;default:'ENGLISH'" json:"language_preference,omitempty"`
	HasFever           *bool          `json:"has_fever,omitempty"`
	HasFacialSwelling  *bool          `json:"has_facial_swelling,omitempty"`
	DifficultySwallowingBreathing *bool `json:"difficulty_swallowing_breathing,omitempty"`
	TriageActionTaken  *TriageAction  `gorm:"type:text" json:"triage_action_taken,omitempty"`
	UserAgent          *string        `gorm:"type:text" json:"user_agent,omitempty"`
	ReferralSource     *string        `gorm:"type:text" json:"referral_source,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}
