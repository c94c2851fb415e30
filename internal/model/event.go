package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventSourceRabbitMQ = "rabbitmq"
	EventSourceKafka    = "kafka"
)

// UpdateEvent is a single document update delivered by the store: the
// snapshots of the notice before and after the write.
type UpdateEvent struct {
	ID         uuid.UUID `json:"id"`
	NoticeID   string    `json:"notice_id"`
	Before     Notice    `json:"before"`
	After      Notice    `json:"after"`
	OccurredAt time.Time `json:"occurred_at"`
	Source     string    `json:"source,omitempty"`
}

// NewUpdateEvent builds an update event for a committed write.
func NewUpdateEvent(before, after Notice) UpdateEvent {
	return UpdateEvent{
		ID:         uuid.New(),
		NoticeID:   after.ID,
		Before:     before,
		After:      after,
		OccurredAt: time.Now().UTC(),
		Source:     EventSourceRabbitMQ,
	}
}
