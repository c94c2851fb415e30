package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/config"
	"github.com/aliskhannn/notice-pusher/internal/model"
)

// FailedEvent is the body published to the dead-letter queue for update
// events the push pipeline could not complete.
type FailedEvent struct {
	Event    model.UpdateEvent `json:"event"`
	Reason   string            `json:"reason"`
	FailedAt time.Time         `json:"failed_at"`
}

// NoticeQueue carries notice update events from the admin API to the push
// workers, plus a dead-letter queue for events that failed.
type NoticeQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer

	channel       *rabbitmq.Channel
	consumerTag   string
	routingKey    string
	dlqRoutingKey string
}

// consumerTag identifies the push worker subscription so it can be cancelled.
const consumerTag = "notice-pusher"

func NewNoticeQueue(ch *rabbitmq.Channel, cfg *config.Config) (*NoticeQueue, error) {
	names := cfg.RabbitMQ

	exchange := rabbitmq.NewExchange(names.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq, err := qm.DeclareQueue(names.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": names.DLQ,
	}

	mainQ, err := qm.DeclareQueue(names.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, names.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	if err := ch.QueueBind(dlq.Name, names.DLQ, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the DLQ: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	consCfg := rabbitmq.NewConsumerConfig(mainQ.Name)
	consCfg.Consumer = consumerTag
	cons := rabbitmq.NewConsumer(ch, consCfg)

	return &NoticeQueue{
		Publisher:     pub,
		Consumer:      cons,
		channel:       ch,
		consumerTag:   consumerTag,
		routingKey:    names.RoutingKey,
		dlqRoutingKey: names.DLQ,
	}, nil
}

// Publish sends an update event to the push workers.
func (q *NoticeQueue) Publish(ev model.UpdateEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// PublishFailed moves an event the pipeline could not complete to the DLQ.
func (q *NoticeQueue) PublishFailed(ev model.UpdateEvent, reason error, strategy retry.Strategy) error {
	body, err := json.Marshal(FailedEvent{Event: ev, Reason: reason.Error(), FailedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal failed event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.dlqRoutingKey, "application/json", strategy)
}

// Consume decodes update events from the main queue into out until ctx is
// done. On shutdown the subscription is cancelled and the remaining deliveries
// are drained so the underlying consumer returns.
func (q *NoticeQueue) Consume(ctx context.Context, out chan<- model.UpdateEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)
	consumeErr := make(chan error, 1)

	go func() {
		consumeErr <- q.Consumer.ConsumeWithRetry(msgChan, strategy)
	}()

	return forward(ctx, msgChan, consumeErr, out, func() error {
		return q.channel.Cancel(q.consumerTag, false)
	})
}

// forward moves decoded events from msgChan to out. Once ctx is done it calls
// cancel and discards deliveries until the consumer reports on consumeErr.
func forward(
	ctx context.Context,
	msgChan chan []byte,
	consumeErr <-chan error,
	out chan<- model.UpdateEvent,
	cancel func() error,
) error {
	for {
		select {
		case err := <-consumeErr:
			return err
		case m := <-msgChan:
			ev, err := DecodeEvent(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return drain(msgChan, consumeErr, cancel)
			}
		case <-ctx.Done():
			return drain(msgChan, consumeErr, cancel)
		}
	}
}

func drain(msgChan chan []byte, consumeErr <-chan error, cancel func() error) error {
	// A failed cancel means the channel is closed, which ends the deliveries too.
	if err := cancel(); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to cancel consumer")
	}

	for {
		select {
		case err := <-consumeErr:
			return err
		case <-msgChan:
		}
	}
}

// DecodeEvent parses a queue message body into an update event.
func DecodeEvent(body []byte) (model.UpdateEvent, error) {
	var ev model.UpdateEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return model.UpdateEvent{}, err
	}

	if ev.NoticeID == "" {
		ev.NoticeID = ev.After.ID
	}
	if ev.NoticeID == "" {
		return model.UpdateEvent{}, fmt.Errorf("event %s has no notice id", ev.ID)
	}
	if ev.Source == "" {
		ev.Source = model.EventSourceRabbitMQ
	}

	return ev, nil
}
