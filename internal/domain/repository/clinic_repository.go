package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
)

type ClinicRepository interface {
	// FindAllWithRelations loads the full clinic catalog (active and
	// inactive) with access rules, services, service rules, pricing and
	// timing attached, joined in memory by clinic id.
	FindAllWithRelations(ctx context.Context, db *gorm.DB) ([]entity.Clinic, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
}
