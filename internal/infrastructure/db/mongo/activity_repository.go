package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

const activityCollection = "activity_events"

// ActivityRepository is the Mongo-backed audit trail.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivityEvent struct {
	ActorID   string `bson:"actor_id"`
	Action    string `bson:"action"`
	TargetID  string `bson:"target_id,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := mongoActivityEvent{
		ActorID:   event.ActorID,
		Action:    event.Action,
		TargetID:  event.TargetID,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}
