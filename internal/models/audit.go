package models

// AuditEvent records a committed mutation of a content entity.
type AuditEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event.
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of the mutation.
	ActorID   string `json:"actor_id"`  // User who performed the mutation.
	Entity    string `json:"entity"`    // "user", "post", "comment" or "like".
	EntityID  string `json:"entity_id"` // Identifier of the mutated entity.
	Action    string `json:"action"`    // e.g. "create", "update", "delete", "purge".
}

// Audit entity names.
const (
	EntityUser    = "user"
	EntityPost    = "post"
	EntityComment = "comment"
	EntityLike    = "like"
)

// Audit actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionPurge  = "purge"
)
