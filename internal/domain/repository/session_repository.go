package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
)

type SessionRepository interface {
	Create(db *gorm.DB, session *entity.Session) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Session, error)
}
