package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is one ranked result row for a session. Scores are stored
// at fixed 3-decimal precision as numeric(5,3).
type Recommendation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"session_id"`
	ClinicID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Rank              int        `gorm:"type:smallint;not null" json:"rank"`
	Bucket            string     `gorm:"type:text;not null" json:"bucket"`
	ScoreTotal        string     `gorm:"type:numeric(5,3)" json:"score_total"`
	ScoreEligibility  string     `gorm:"type:numeric(5,3)" json:"score_eligibility"`
	ScoreServiceMatch string     `gorm:"type:numeric(5,3)" json:"score_service_match"`
	ScoreAccess       string     `gorm:"type:numeric(5,3)" json:"score_access"`
	ScoreCost         string     `gorm:"type:numeric(5,3)" json:"score_cost"`
	ScoreDistance     string     `gorm:"type:numeric(5,3)" json:"score_distance"`
	ScoreFreshness    string     `gorm:"type:numeric(5,3)" json:"score_freshness"`
	ReasonCodes       StringList `gorm:"type:jsonb" json:"reason_codes"`
	DisplayConfidence string     `gorm:"type:text" json:"display_confidence"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
