package dto

import "github.com/google/uuid"

type ClinicSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ClinicType string    `json:"clinic_type"`
	Address    *string   `json:"address,omitempty"`
	City       *string   `json:"city,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	WebsiteURL *string   `json:"website_url,omitempty"`
}

type ScoreBreakdownResponse struct {
	Total        string `json:"total"`
	Eligibility  string `json:"eligibility"`
	ServiceMatch string `json:"service_match"`
	Access       string `json:"access"`
	Cost         string `json:"cost"`
	Distance     string `json:"distance"`
	Freshness    string `json:"freshness"`
}

type RecommendationResponse struct {
	Rank              int                    `json:"rank"`
	Bucket            string                 `json:"bucket"`
	Clinic            ClinicSummary          `json:"clinic"`
	Scores            ScoreBreakdownResponse `json:"scores"`
	ReasonCodes       []string               `json:"reason_codes"`
	DisplayConfidence string                 `json:"display_confidence"`
}

type RecommendationListResponse struct {
	SessionID       uuid.UUID                `json:"session_id"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Total           int                      `json:"total"`
}
