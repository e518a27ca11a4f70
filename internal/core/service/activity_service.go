package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that writes audit events to
// the activity repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.ActorID == "" || event.Action == "" {
		return fmt.Errorf("process activity: missing actor or action")
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("actor_id", event.ActorID).
		Str("action", event.Action).
		Str("target_id", event.TargetID).
		Msg("activity recorded")
	return nil
}
