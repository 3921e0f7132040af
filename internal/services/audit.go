package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// Auditor publishes committed mutations to the audit topic.
// A nil Auditor, or one without a writer, drops events.
type Auditor struct {
	writer KafkaWriter
	now    func() time.Time
}

func NewAuditor(writer KafkaWriter) *Auditor {
	return &Auditor{writer: writer, now: time.Now}
}

// Publish sends one audit event. Failures are logged and never returned:
// the mutation it describes has already been committed.
func (a *Auditor) Publish(ctx context.Context, actorID uuid.UUID, entity string, entityID uuid.UUID, action string) {
	if a == nil || a.writer == nil {
		logger.Log.Debugw("audit writer not configured, skipping publishing", "entity", entity, "entity_id", entityID, "action", action)
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: a.now().Unix(),
		ActorID:   actorID.String(),
		Entity:    entity,
		EntityID:  entityID.String(),
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}

	if err := a.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "entity", entity, "action", action, "error", err)
		return
	}
	logger.Log.Infow("audit event published", "event_id", event.EventID, "entity", entity, "entity_id", event.EntityID, "action", action)
}
