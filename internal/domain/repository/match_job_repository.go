package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
)

type MatchJobRepository interface {
	Create(db *gorm.DB, job *entity.MatchJob) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MatchJob, error)
	// FindActiveBySession returns the newest non-failed job for a session,
	// or nil. Used to keep enqueueing idempotent per session.
	FindActiveBySession(db *gorm.DB, sessionID uuid.UUID) (*entity.MatchJob, error)
	MarkProcessing(db *gorm.DB, id uuid.UUID) error
	MarkCompleted(db *gorm.DB, id uuid.UUID) error
	MarkFailed(db *gorm.DB, id uuid.UUID, message string) error
}
