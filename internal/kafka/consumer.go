package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

const opUpdate = "u"

// Consumer reads Debezium change events of the notices table and turns row
// updates into update events for the push workers.
type Consumer struct {
	topic         string
	consumerGroup sarama.ConsumerGroup
	out           chan<- model.UpdateEvent
}

// NewConsumer constructs a new Consumer.
// It receives its consumer group via dependency injection.
func NewConsumer(topic string, consumerGroup sarama.ConsumerGroup) *Consumer {
	return &Consumer{
		topic:         topic,
		consumerGroup: consumerGroup,
	}
}

// Consume joins the consumer group and forwards update events to out until
// ctx is cancelled or the group is closed. Transient errors are retried with
// a backoff starting at strategy.Delay.
func (c *Consumer) Consume(ctx context.Context, out chan<- model.UpdateEvent, strategy retry.Strategy) error {
	c.out = out

	defer func() {
		if err := c.consumerGroup.Close(); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to close consumer group")
		}
	}()

	zlog.Logger.Info().Str("topic", c.topic).Msg("kafka consumer started")

	backoff := strategy.Delay
	if backoff <= 0 {
		backoff = time.Second
	}

	for {
		// Consume blocks until a rebalance, an error or cancellation.
		err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}

			zlog.Logger.Error().Err(err).Msg("error consuming change events")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}

		if ctx.Err() != nil {
			zlog.Logger.Info().Msg("context cancelled, stopping kafka consumer")
			return ctx.Err()
		}
	}
}

// Setup is called once when a new consumer session starts.
func (c *Consumer) Setup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		zlog.Logger.Info().Str("topic", topic).Interface("partitions", partitions).Msg("partition assignment")
	}
	return nil
}

// Cleanup is called once when the consumer session ends.
func (c *Consumer) Cleanup(_ sarama.ConsumerGroupSession) error {
	zlog.Logger.Info().Msg("kafka session cleanup complete")
	return nil
}

// ConsumeClaim decodes change events of one partition. A message is marked
// once its event has been handed to the workers or found irrelevant.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		ev, ok, err := DecodeChange(message.Value)
		if err != nil {
			zlog.Logger.Error().
				Err(err).
				Str("topic", message.Topic).
				Int32("partition", message.Partition).
				Int64("offset", message.Offset).
				Msg("failed to decode change event")
			session.MarkMessage(message, "")
			continue
		}

		if !ok {
			session.MarkMessage(message, "")
			continue
		}

		// Same message, same event id: redeliveries after a rebalance stay correlatable.
		ev.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("kafka://%s/%d/%d", message.Topic, message.Partition, message.Offset)))

		select {
		case c.out <- ev:
		case <-session.Context().Done():
			return nil
		}

		session.MarkMessage(message, "")
	}
	return nil
}

// row is the notices table row as serialised by Debezium. Columns the push
// pipeline does not read are left out.
type row struct {
	ID            string  `json:"id"`
	Title         *string `json:"title"`
	Category      *string `json:"category"`
	PushRequested *bool   `json:"push_requested"`
	PushRequestID *string `json:"push_request_id"`
	PushStatus    *string `json:"push_status"`
	PushError     *string `json:"push_error"`
}

func (r *row) notice() model.Notice {
	if r == nil {
		return model.Notice{}
	}

	n := model.Notice{ID: r.ID, PushStatus: model.PushStatusUnset}
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Category != nil {
		n.Category = *r.Category
	}
	if r.PushRequested != nil {
		n.PushRequested = *r.PushRequested
	}
	if r.PushRequestID != nil {
		n.PushRequestID = *r.PushRequestID
	}
	if r.PushStatus != nil && *r.PushStatus != "" {
		n.PushStatus = model.PushStatus(*r.PushStatus)
	}
	if r.PushError != nil {
		n.PushError = *r.PushError
	}

	return n
}

type change struct {
	Before *row   `json:"before"`
	After  *row   `json:"after"`
	Op     string `json:"op"`
	TsMs   int64  `json:"ts_ms"`
}

// DecodeChange parses a Debezium change event, with or without the schema
// envelope. ok is false for tombstones and for operations other than updates.
func DecodeChange(value []byte) (ev model.UpdateEvent, ok bool, err error) {
	if len(value) == 0 {
		return model.UpdateEvent{}, false, nil
	}

	var envelope struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(value, &envelope); err != nil {
		return model.UpdateEvent{}, false, fmt.Errorf("decode envelope: %w", err)
	}

	body := value
	if len(envelope.Payload) > 0 && string(envelope.Payload) != "null" {
		body = envelope.Payload
	}

	var ch change
	if err := json.Unmarshal(body, &ch); err != nil {
		return model.UpdateEvent{}, false, fmt.Errorf("decode change: %w", err)
	}

	if ch.Op != opUpdate {
		return model.UpdateEvent{}, false, nil
	}

	if ch.After == nil || ch.After.ID == "" {
		return model.UpdateEvent{}, false, errors.New("update event without after image")
	}

	occurredAt := time.Now().UTC()
	if ch.TsMs > 0 {
		occurredAt = time.UnixMilli(ch.TsMs).UTC()
	}

	return model.UpdateEvent{
		NoticeID:   ch.After.ID,
		Before:     ch.Before.notice(),
		After:      ch.After.notice(),
		OccurredAt: occurredAt,
		Source:     model.EventSourceKafka,
	}, true, nil
}
