package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

type stubActivityRepo struct {
	inserted []*domain.ActivityEvent
	err      error
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{
		ActorID:   "user-1",
		Action:    domain.ActionPostCreated,
		TargetID:  "post-1",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Action != domain.ActionPostCreated {
		t.Fatalf("event not persisted: %+v", repo.inserted)
	}
}

func TestActivityService_Process_RejectsIncompleteEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.ActivityEvent{Action: domain.ActionPostCreated}); err == nil {
		t.Fatalf("expected error for missing actor")
	}
	if err := svc.Process(context.Background(), domain.ActivityEvent{ActorID: "user-1"}); err == nil {
		t.Fatalf("expected error for missing action")
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("incomplete events must not be persisted")
	}
}

func TestActivityService_Process_WrapsRepoError(t *testing.T) {
	cause := errors.New("write timeout")
	svc := NewActivityService(&stubActivityRepo{err: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{ActorID: "user-1", Action: domain.ActionPostSaved})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
