package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

type captureService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (s *captureService) Process(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureService) snapshot() []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ActivityEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitForEvents(t *testing.T, svc *captureService, want int) []domain.ActivityEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got := svc.snapshot()
		if len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", want, len(svc.snapshot()))
	return nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &captureService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.ActivityEvent{ActorID: "user-1", Action: domain.ActionPostCreated, TargetID: "post-1"})
	d.Record(domain.ActivityEvent{ActorID: "user-2", Action: domain.ActionPostSaved, TargetID: "post-1"})

	events := waitForEvents(t, svc, 2)
	seen := make(map[string]bool)
	for _, ev := range events {
		seen[ev.ActorID] = true
	}
	if !seen["user-1"] || !seen["user-2"] {
		t.Fatalf("missing events: %+v", events)
	}
}

func TestDispatcher_SameActorKeepsOrder(t *testing.T) {
	svc := &captureService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{
		domain.ActionPostCreated,
		domain.ActionPostUpdated,
		domain.ActionPostDeleted,
	}
	for _, action := range actions {
		d.Record(domain.ActivityEvent{ActorID: "user-1", Action: action, TargetID: "post-1"})
	}

	events := waitForEvents(t, svc, len(actions))
	for i, ev := range events {
		if ev.Action != actions[i] {
			t.Fatalf("order broken at %d: got %s, want %s", i, ev.Action, actions[i])
		}
	}
}

func TestDispatcher_ShardIsStablePerActor(t *testing.T) {
	d := NewDispatcher(8, &captureService{}, zerolog.Nop())

	first := d.shardIndex("user-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user-42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &captureService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
