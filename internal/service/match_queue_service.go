package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// MatchQueueKey is the Redis list carrying queued match jobs.
	MatchQueueKey = "match:queue"

	enqueueTimeout = 5 * time.Second
)

// MatchJobMessage is the queue payload: just enough to find the job and
// its session again; all real data lives in Postgres.
type MatchJobMessage struct {
	MatchJobID uuid.UUID `json:"match_job_id"`
	SessionID  uuid.UUID `json:"session_id"`
}

// MatchQueueService moves match jobs between the API process and the
// worker over a Redis list. LPUSH on enqueue, BRPOP on consume.
type MatchQueueService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	pollTimeout time.Duration
}

func NewMatchQueueService(redisClient *redis.Client, log *logrus.Logger, pollTimeout time.Duration) *MatchQueueService {
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &MatchQueueService{
		redisClient: redisClient,
		log:         log,
		pollTimeout: pollTimeout,
	}
}

func (s *MatchQueueService) Enqueue(ctx context.Context, msg MatchJobMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal match job message: %w", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := s.redisClient.LPush(opCtx, MatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue match job: %w", err)
	}
	return nil
}

// Consume blocks on the queue until ctx is cancelled, invoking handler for
// each message. A handler error is logged and the loop continues; marking
// the job failed is the handler's responsibility.
func (s *MatchQueueService) Consume(ctx context.Context, handler func(ctx context.Context, msg MatchJobMessage) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.redisClient.BRPop(ctx, s.pollTimeout, MatchQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // poll timeout, loop again
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.log.Warnf("Match queue poll failed: %+v", err)
			continue
		}

		// BRPop returns [key, value]
		if len(result) < 2 {
			continue
		}

		var msg MatchJobMessage
		if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
			s.log.Warnf("Dropping malformed match job payload: %+v", err)
			continue
		}

		if err := handler(ctx, msg); err != nil {
			s.log.Errorf("Match job %s failed: %+v", msg.MatchJobID, err)
		}
	}
}
