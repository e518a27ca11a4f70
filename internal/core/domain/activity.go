package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionUserRegistered = "user_registered"
	ActionUserDeleted    = "user_deleted"
	ActionPostCreated    = "post_created"
	ActionPostUpdated    = "post_updated"
	ActionPostDeleted    = "post_deleted"
	ActionPostSaved      = "post_saved"
	ActionPostUnsaved    = "post_unsaved"
)

// ActivityEvent is an audit record of a mutation performed by an actor.
type ActivityEvent struct {
	ActorID   string
	Action    string
	TargetID  string
	Timestamp time.Time
}
