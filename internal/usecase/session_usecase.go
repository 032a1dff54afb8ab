package usecase

import (
	"context"
	"errors"
	"math"

	"dental-navigator/internal/converter"
	"dental-navigator/internal/delivery/dto"
	"dental-navigator/internal/domain/entity"
	"dental-navigator/internal/domain/repository"
	"dental-navigator/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBlocked  = errors.New("session was blocked by triage")
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	RequeueMatch(ctx context.Context, sessionID uuid.UUID) (*dto.MatchJobResponse, error)
}

type sessionUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	sessionRepo  repository.SessionRepository
	matchJobRepo repository.MatchJobRepository
	queueService *service.MatchQueueService
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	matchJobRepo repository.MatchJobRepository,
	queueService *service.MatchQueueService,
) SessionUsecase {
	return &sessionUsecase{
		db:           db,
		log:          log,
		sessionRepo:  sessionRepo,
		matchJobRepo: matchJobRepo,
		queueService: queueService,
	}
}

// CreateSession stores one anonymous intake, runs the red-flag triage
// gate, and queues a match job unless triage blocked the session.
//
// Flow:
// 1. Evaluate triage against the raw request
// 2. Persist the session with privacy-rounded coordinates
// 3. If not blocked, create a match job and enqueue it
func (u *sessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	triage := service.EvaluateTriage(req)

	session := &entity.Session{
		Zip:                           req.Zip,
		LatRound:                      roundCoord(req.Lat),
		LngRound:                      roundCoord(req.Lng),
		ChiefComplaint:                entity.ChiefComplaint(req.ChiefComplaint),
		InsuranceType:                 entity.InsuranceType(req.InsuranceType),
		MedicaidPlan:                  medicaidPlanPtr(req.MedicaidPlan),
		Urgency:                       entity.UrgencyLevel(req.Urgency),
		BudgetBand:                    budgetBandPtr(req.BudgetBand),
		TravelMode:                    travelModePtr(req.TravelMode),
		TravelTime:                    travelTimePtr(req.TravelTime),
		LanguagePreference:            req.LanguagePreference,
		HasFever:                      req.HasFever,
		HasFacialSwelling:             req.HasFacialSwelling,
		DifficultySwallowingBreathing: req.DifficultySwallowingBreathing,
		TriageActionTaken:             &triage.Action,
		ReferralSource:                req.ReferralSource,
	}

	if err := u.sessionRepo.Create(u.db.WithContext(ctx), session); err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	response := &dto.CreateSessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Triage: dto.TriageOutcome{
			Action:       string(triage.Action),
			Blocked:      triage.Blocked,
			MessageTitle: optionalString(triage.MessageTitle),
			MessageBody:  optionalString(triage.MessageBody),
		},
	}

	if triage.Blocked {
		u.log.Infof("Session blocked by triage: id=%s, action=%s", session.ID, triage.Action)
		return response, nil
	}

	job := &entity.MatchJob{
		SessionID: session.ID,
		Status:    entity.JobQueued,
	}
	if err := u.matchJobRepo.Create(u.db.WithContext(ctx), job); err != nil {
		u.log.Warnf("Failed to create match job for session %s: %+v", session.ID, err)
		return nil, err
	}

	msg := service.MatchJobMessage{MatchJobID: job.ID, SessionID: session.ID}
	if err := u.queueService.Enqueue(ctx, msg); err != nil {
		u.log.Errorf("Failed to enqueue match job %s: %+v", job.ID, err)
		if failErr := u.matchJobRepo.MarkFailed(u.db.WithContext(ctx), job.ID, "enqueue failed"); failErr != nil {
			u.log.Errorf("Failed to mark match job %s failed: %+v", job.ID, failErr)
		}
		return nil, err
	}

	response.MatchJobID = &job.ID

	u.log.Infof("Session created: id=%s, complaint=%s, job=%s", session.ID, session.ChiefComplaint, job.ID)
	return response, nil
}

// RequeueMatch creates and enqueues a fresh match job for an existing
// session, used when an earlier job failed. Enqueueing is idempotent: an
// already queued or running job is returned as-is instead of duplicated.
func (u *sessionUsecase) RequeueMatch(ctx context.Context, sessionID uuid.UUID) (*dto.MatchJobResponse, error) {
	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session %s: %+v", sessionID, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.TriageActionTaken != nil && *session.TriageActionTaken == entity.TriageRouteToED {
		return nil, ErrSessionBlocked
	}

	existing, err := u.matchJobRepo.FindActiveBySession(u.db.WithContext(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to find active match job for session %s: %+v", sessionID, err)
		return nil, err
	}
	if existing != nil {
		response := converter.MatchJobToResponse(existing)
		return &response, nil
	}

	job := &entity.MatchJob{
		SessionID: sessionID,
		Status:    entity.JobQueued,
	}
	if err := u.matchJobRepo.Create(u.db.WithContext(ctx), job); err != nil {
		u.log.Warnf("Failed to create match job for session %s: %+v", sessionID, err)
		return nil, err
	}

	msg := service.MatchJobMessage{MatchJobID: job.ID, SessionID: sessionID}
	if err := u.queueService.Enqueue(ctx, msg); err != nil {
		u.log.Errorf("Failed to enqueue match job %s: %+v", job.ID, err)
		if failErr := u.matchJobRepo.MarkFailed(u.db.WithContext(ctx), job.ID, "enqueue failed"); failErr != nil {
			u.log.Errorf("Failed to mark match job %s failed: %+v", job.ID, failErr)
		}
		return nil, err
	}

	u.log.Infof("Match job requeued: session=%s, job=%s", sessionID, job.ID)
	response := converter.MatchJobToResponse(job)
	return &response, nil
}

// roundCoord rounds a coordinate to two decimals (roughly 1.1 km) before
// storage. Exact locations are never persisted.
func roundCoord(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := math.Round(*v*100) / 100
	return &rounded
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func medicaidPlanPtr(s *string) *entity.MedicaidPlan {
	if s == nil {
		return nil
	}
	v := entity.MedicaidPlan(*s)
	return &v
}

func budgetBandPtr(s *string) *entity.BudgetBand {
	if s == nil {
		return nil
	}
	v := entity.BudgetBand(*s)
	return &v
}

func travelModePtr(s *string) *entity.TravelMode {
	if s == nil {
		return nil
	}
	v := entity.TravelMode(*s)
	return &v
}

func travelTimePtr(s *string) *entity.TravelTime {
	if s == nil {
		return nil
	}
	v := entity.TravelTime(*s)
	return &v
}
