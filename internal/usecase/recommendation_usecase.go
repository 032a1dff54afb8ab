package usecase

import (
	"context"

	"dental-navigator/internal/converter"
	"dental-navigator/internal/delivery/dto"
	"dental-navigator/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RecommendationUsecase interface {
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*dto.RecommendationListResponse, error)
	GetMatchJob(ctx context.Context, jobID uuid.UUID) (*dto.MatchJobResponse, error)
}

type recommendationUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	sessionRepo        repository.SessionRepository
	matchJobRepo       repository.MatchJobRepository
	recommendationRepo repository.RecommendationRepository
}

func NewRecommendationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	matchJobRepo repository.MatchJobRepository,
	recommendationRepo repository.RecommendationRepository,
) RecommendationUsecase {
	return &recommendationUsecase{
		db:                 db,
		log:                log,
		sessionRepo:        sessionRepo,
		matchJobRepo:       matchJobRepo,
		recommendationRepo: recommendationRepo,
	}
}

// GetBySession returns the ranked recommendations for a session in rank
// order. An existing session with no rows yet yields an empty list, which
// the caller can distinguish from a missing session.
func (u *recommendationUsecase) GetBySession(ctx context.Context, sessionID uuid.UUID) (*dto.RecommendationListResponse, error) {
	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session %s: %+v", sessionID, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	recommendations, err := u.recommendationRepo.FindBySession(u.db.WithContext(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to find recommendations for session %s: %+v", sessionID, err)
		return nil, err
	}

	return &dto.RecommendationListResponse{
		SessionID:       sessionID,
		Recommendations: converter.RecommendationsToResponses(recommendations),
		Total:           len(recommendations),
	}, nil
}

func (u *recommendationUsecase) GetMatchJob(ctx context.Context, jobID uuid.UUID) (*dto.MatchJobResponse, error) {
	job, err := u.matchJobRepo.FindByID(u.db.WithContext(ctx), jobID)
	if err != nil {
		u.log.Warnf("Failed to find match job %s: %+v", jobID, err)
		return nil, err
	}
	if job == nil {
		return nil, ErrMatchJobNotFound
	}

	response := converter.MatchJobToResponse(job)
	return &response, nil
}
