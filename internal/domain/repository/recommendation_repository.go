package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
)

type RecommendationRepository interface {
	CreateBatch(db *gorm.DB, recommendations []entity.Recommendation) error
	FindBySession(db *gorm.DB, sessionID uuid.UUID) ([]entity.Recommendation, error)
	// CountRecentByClinic returns per-clinic recommendation counts over the
	// trailing window, feeding the load-balancing penalty.
	CountRecentByClinic(db *gorm.DB, windowDays int) (map[uuid.UUID]int, error)
}
