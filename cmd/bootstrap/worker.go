package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dental-navigator/config"
	"dental-navigator/internal/infrastructure/cache"
	"dental-navigator/internal/infrastructure/database"
	"dental-navigator/internal/repository"
	"dental-navigator/internal/service"
	"dental-navigator/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Worker holds all dependencies for the match worker process
type Worker struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	queueService *service.MatchQueueService
	matchUsecase usecase.MatchUsecase
}

// NewWorker creates a worker instance with all dependencies initialized
func NewWorker() (*Worker, error) {
	worker := &Worker{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	worker.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	worker.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	worker.RedisClient = redisClient

	log := logrus.StandardLogger()

	sessionRepo := repository.NewSessionRepository()
	clinicRepo := repository.NewClinicRepository()
	matchJobRepo := repository.NewMatchJobRepository()
	recommendationRepo := repository.NewRecommendationRepository()

	worker.queueService = service.NewMatchQueueService(redisClient, log, cfg.Worker.PollTimeout)
	worker.matchUsecase = usecase.NewMatchUsecase(db, log, sessionRepo, clinicRepo, matchJobRepo, recommendationRepo, cfg.Match.WeightsJSON)

	return worker, nil
}

// Run consumes the match queue until an interrupt signal arrives
func (w *Worker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down worker...")
		cancel()
	}()

	logrus.Info("Match worker started")
	err := w.queueService.Consume(ctx, w.matchUsecase.ProcessJob)
	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.Errorf("Match worker stopped: %v", err)
	}

	w.Close()
	logrus.Info("Worker shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (w *Worker) Close() {
	if w.DB != nil {
		sqlDB, err := w.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if w.RedisClient != nil {
		w.RedisClient.Close()
	}
}
