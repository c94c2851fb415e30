package push

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/aliskhannn/notice-pusher/internal/metrics"
	"github.com/aliskhannn/notice-pusher/internal/model"
)

//go:generate mockgen -source=dispatcher.go -destination=../../mocks/service/push/sender_mock.go -package=mocks

// Sender delivers a message to every subscriber of the message topic and
// returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg model.NotificationMessage) (string, error)
}

// DeliveryError is returned when the provider rejected or failed to send a message.
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	return e.Reason
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Dispatcher hands a composed message to the push provider exactly once.
// Failed sends are not retried.
type Dispatcher struct {
	sender  Sender
	limiter *rate.Limiter
}

// NewDispatcher creates a dispatcher. A nil limiter disables rate limiting.
func NewDispatcher(sender Sender, limiter *rate.Limiter) *Dispatcher {
	return &Dispatcher{sender: sender, limiter: limiter}
}

// Dispatch sends msg and returns the provider receipt, or a *DeliveryError.
func (d *Dispatcher) Dispatch(ctx context.Context, msg model.NotificationMessage) (model.DeliveryReceipt, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return model.DeliveryReceipt{}, &DeliveryError{Reason: fmt.Sprintf("rate limiter: %v", err), Err: err}
		}
	}

	start := time.Now()
	id, err := d.sender.Send(ctx, msg)
	metrics.PushDispatchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return model.DeliveryReceipt{}, &DeliveryError{Reason: err.Error(), Err: err}
	}

	return model.DeliveryReceipt{MessageID: id}, nil
}
