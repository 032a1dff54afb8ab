package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dental-navigator/internal/converter"
	"dental-navigator/internal/domain/entity"
	"dental-navigator/internal/domain/repository"
	"dental-navigator/internal/matching"
	"dental-navigator/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMatchJobNotFound = errors.New("match job not found")
)

type MatchUsecase interface {
	// ProcessJob runs the full matching pipeline for one queued job,
	// handling the job status lifecycle around it.
	ProcessJob(ctx context.Context, msg service.MatchJobMessage) error
}

type matchUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	sessionRepo        repository.SessionRepository
	clinicRepo         repository.ClinicRepository
	matchJobRepo       repository.MatchJobRepository
	recommendationRepo repository.RecommendationRepository
	weights            matching.Weights
}

func NewMatchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	clinicRepo repository.ClinicRepository,
	matchJobRepo repository.MatchJobRepository,
	recommendationRepo repository.RecommendationRepository,
	weightsJSON string,
) MatchUsecase {
	weights, overridden := matching.ParseWeights(weightsJSON)
	if weightsJSON != "" && !overridden {
		log.Warnf("Malformed MATCH_WEIGHTS override %q, using defaults", weightsJSON)
	}

	return &matchUsecase{
		db:                 db,
		log:                log,
		sessionRepo:        sessionRepo,
		clinicRepo:         clinicRepo,
		matchJobRepo:       matchJobRepo,
		recommendationRepo: recommendationRepo,
		weights:            weights,
	}
}

func (u *matchUsecase) ProcessJob(ctx context.Context, msg service.MatchJobMessage) error {
	job, err := u.matchJobRepo.FindByID(u.db.WithContext(ctx), msg.MatchJobID)
	if err != nil {
		u.log.Warnf("Failed to find match job %s: %+v", msg.MatchJobID, err)
		return err
	}
	if job == nil {
		return ErrMatchJobNotFound
	}
	if job.Status == entity.JobCompleted {
		// Re-delivered message, nothing to do
		return nil
	}

	if err := u.matchJobRepo.MarkProcessing(u.db.WithContext(ctx), job.ID); err != nil {
		u.log.Warnf("Failed to mark match job %s processing: %+v", job.ID, err)
		return err
	}

	stats, err := u.runMatch(ctx, job.SessionID)
	if err != nil {
		if failErr := u.matchJobRepo.MarkFailed(u.db.WithContext(ctx), job.ID, err.Error()); failErr != nil {
			u.log.Errorf("Failed to mark match job %s failed: %+v", job.ID, failErr)
		}
		return err
	}

	if err := u.matchJobRepo.MarkCompleted(u.db.WithContext(ctx), job.ID); err != nil {
		u.log.Errorf("Failed to mark match job %s completed: %+v", job.ID, err)
		return err
	}

	u.log.Infof("Match job completed: id=%s, session=%s, candidates=%d, passed=%d, recommendations=%d",
		job.ID, job.SessionID, stats.CandidateCount, stats.FilteredCount, stats.RecommendationCount)
	return nil
}

// runMatch executes one pipeline run for a session and persists the
// ranked results.
func (u *matchUsecase) runMatch(ctx context.Context, sessionID uuid.UUID) (matching.RunStats, error) {
	var stats matching.RunStats

	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session %s: %+v", sessionID, err)
		return stats, err
	}
	if session == nil {
		return stats, ErrSessionNotFound
	}

	clinics, err := u.clinicRepo.FindAllWithRelations(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load clinic catalog: %+v", err)
		return stats, err
	}

	counts, err := u.recommendationRepo.CountRecentByClinic(u.db.WithContext(ctx), matching.LoadBalanceWindowDays)
	if err != nil {
		u.log.Warnf("Failed to load recent recommendation counts: %+v", err)
		return stats, err
	}

	input := converter.SessionToMatchInput(session)
	candidates := converter.ClinicsToCandidates(clinics)

	ranked, stats := matching.Run(input, candidates, counts, u.weights, time.Now().UTC())

	recommendations := make([]entity.Recommendation, 0, len(ranked))
	for i, clinic := range ranked {
		recommendations = append(recommendations, entity.Recommendation{
			SessionID:         sessionID,
			ClinicID:          clinic.ClinicID,
			Rank:              i + 1,
			Bucket:            clinic.Bucket,
			ScoreTotal:        formatScore(clinic.TotalScore),
			ScoreEligibility:  formatScore(clinic.Breakdown.Eligibility),
			ScoreServiceMatch: formatScore(clinic.Breakdown.ServiceMatch),
			ScoreAccess:       formatScore(clinic.Breakdown.Access),
			ScoreCost:         formatScore(clinic.Breakdown.Cost),
			ScoreDistance:     formatScore(clinic.Breakdown.Distance),
			ScoreFreshness:    formatScore(clinic.Breakdown.Freshness),
			ReasonCodes:       entity.StringList(clinic.ReasonCodes),
			DisplayConfidence: matching.DisplayConfidence(clinic.ReasonCodes),
		})
	}

	if len(recommendations) > 0 {
		if err := u.recommendationRepo.CreateBatch(u.db.WithContext(ctx), recommendations); err != nil {
			u.log.Errorf("Failed to persist recommendations for session %s: %+v", sessionID, err)
			return stats, err
		}
	}

	return stats, nil
}

// formatScore fixes scores to 3 decimals so stored values round-trip
// identically through the numeric(5,3) columns.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
