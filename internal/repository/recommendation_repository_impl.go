package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
	domainRepo "dental-navigator/internal/domain/repository"
)

type recommendationRepository struct{}

func NewRecommendationRepository() domainRepo.RecommendationRepository {
	return &recommendationRepository{}
}

func (r *recommendationRepository) CreateBatch(db *gorm.DB, recommendations []entity.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}
	return db.Create(&recommendations).Error
}

func (r *recommendationRepository) FindBySession(db *gorm.DB, sessionID uuid.UUID) ([]entity.Recommendation, error) {
	var recommendations []entity.Recommendation
	err := db.Preload("Clinic").
		Where("session_id = ?", sessionID).
		Order("rank ASC").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (r *recommendationRepository) CountRecentByClinic(db *gorm.DB, windowDays int) (map[uuid.UUID]int, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	var rows []struct {
		ClinicID uuid.UUID
		Count    int
	}
	err := db.Model(&entity.Recommendation{}).
		Select("clinic_id, count(*) as count").
		Where("created_at >= ?", cutoff).
		Group("clinic_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.ClinicID] = row.Count
	}
	return counts, nil
}
