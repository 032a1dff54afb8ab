package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
	domainRepo "dental-navigator/internal/domain/repository"
)

type matchJobRepository struct{}

func NewMatchJobRepository() domainRepo.MatchJobRepository {
	return &matchJobRepository{}
}

func (r *matchJobRepository) Create(db *gorm.DB, job *entity.MatchJob) error {
	return db.Create(job).Error
}

func (r *matchJobRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MatchJob, error) {
	var job entity.MatchJob
	err := db.Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *matchJobRepository) FindActiveBySession(db *gorm.DB, sessionID uuid.UUID) (*entity.MatchJob, error) {
	var job entity.MatchJob
	err := db.Where("session_id = ? AND status != ?", sessionID, entity.JobFailed).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *matchJobRepository) MarkProcessing(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	return db.Model(&entity.MatchJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": entity.JobProcessing, "started_at": now}).Error
}

func (r *matchJobRepository) MarkCompleted(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	return db.Model(&entity.MatchJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": entity.JobCompleted, "completed_at": now}).Error
}

func (r *matchJobRepository) MarkFailed(db *gorm.DB, id uuid.UUID, message string) error {
	now := time.Now()
	return db.Model(&entity.MatchJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": entity.JobFailed, "completed_at": now, "error_message": message}).Error
}
