package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ChiefComplaint string   `json:"chief_complaint" validate:"required,oneof=PAIN SWELLING BROKEN_CHIPPED_TOOTH TOOTH_KNOCKED_OUT NEED_TOOTH_PULLED FILLING_CROWN_FELL_OUT BUMP_ON_GUM CLEANING_CHECKUP DENTURES NOT_SURE"`
	InsuranceType  string   `json:"insurance_type" validate:"required,oneof=MEDICAID MEDICARE DUAL_MEDICAID_MEDICARE PRIVATE UNINSURED_SELF_PAY NOT_SURE"`
	MedicaidPlan   *string  `json:"medicaid_plan,omitempty" validate:"omitempty,oneof=PRIORITY_PARTNERS AMERIGROUP MARYLAND_PHYSICIANS_CARE JAI_MEDICAL MEDSTAR_FAMILY_CHOICE UNITED_HEALTHCARE WELLPOINT OTHER UNSURE"`
	Urgency        string   `json:"urgency" validate:"required,oneof=TODAY WITHIN_3_DAYS WITHIN_2_WEEKS JUST_EXPLORING"`
	BudgetBand     *string  `json:"budget_band,omitempty" validate:"omitempty,oneof=FREE_ONLY UNDER_50 50_TO_150 150_PLUS NOT_SURE"`
	TravelMode     *string  `json:"travel_mode,omitempty" validate:"omitempty,oneof=DRIVES PUBLIC_TRANSIT WALK_ONLY RIDE_FROM_SOMEONE NOT_SURE"`
	TravelTime     *string  `json:"travel_time,omitempty" validate:"omitempty,oneof=UP_TO_15_MIN UP_TO_30_MIN UP_TO_60_MIN ANY_DISTANCE"`
	Zip            *string  `json:"zip,omitempty" validate:"omitempty,len=5"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng            *float64 `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	LanguagePreference *string `json:"language_preference,omitempty"`
	HasFever           *bool   `json:"has_fever,omitempty"`
	HasFacialSwelling  *bool   `json:"has_facial_swelling,omitempty"`
	DifficultySwallowingBreathing *bool `json:"difficulty_swallowing_breathing,omitempty"`
	ReferralSource *string `json:"referral_source,omitempty"`
}

type TriageOutcome struct {
	Action       string  `json:"action"`
	Blocked      bool    `json:"blocked"`
	MessageTitle *string `json:"message_title,omitempty"`
	MessageBody  *string `json:"message_body,omitempty"`
}

type CreateSessionResponse struct {
	SessionID  uuid.UUID     `json:"session_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Triage     TriageOutcome `json:"triage"`
	MatchJobID *uuid.UUID    `json:"match_job_id,omitempty"`
}
