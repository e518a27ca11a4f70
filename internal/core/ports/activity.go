package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// ActivityRecorder accepts audit events from services without blocking;
// delivery is best effort.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityService persists a single audit event.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository is the audit-trail persistence layer.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
