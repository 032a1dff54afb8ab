package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchJob tracks one queued matching run for a session.
type MatchJob struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	Status       MatchJobStatus `gorm:"type:text;not null;default:'queued'" json:"status"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	StartedAt    *time.Time     `gorm:"type:timestamptz" json:"started_at,omitempty"`
	CompletedAt  *time.Time     `gorm:"type:timestamptz" json:"completed_at,omitempty"`

	// Relationships
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}

func (MatchJob) TableName() string {
	return "match_jobs"
}
