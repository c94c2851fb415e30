package notice

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/model"
	"github.com/aliskhannn/notice-pusher/internal/service/push"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notice/mock.go -package=mocks
type pushPipeline interface {
	Handle(ctx context.Context, ev model.UpdateEvent) (push.Result, error)
}

type failureSink interface {
	PublishFailed(ev model.UpdateEvent, reason error, strategy retry.Strategy) error
}

// Handler runs update events through the push pipeline and forwards events
// the pipeline could not complete to the failure queue.
type Handler struct {
	pipeline pushPipeline
	failures failureSink
}

// NewHandler creates a handler. failures may be nil, in which case failed
// events are only logged.
func NewHandler(p pushPipeline, failures failureSink) *Handler {
	return &Handler{
		pipeline: p,
		failures: failures,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, ev model.UpdateEvent, strategy retry.Strategy) {
	zlog.Logger.Debug().Msgf("Handle Message: got update event %s for notice %s", ev.ID, ev.NoticeID)

	result, err := h.pipeline.Handle(ctx, ev)
	if err == nil {
		zlog.Logger.Debug().Msgf("Handle Message: event %s for notice %s %s", ev.ID, ev.NoticeID, result)
		return
	}

	var recordErr *push.RecordWriteError
	if errors.As(err, &recordErr) {
		zlog.Logger.Error().
			Err(err).
			Str("notice_id", ev.NoticeID).
			Str("status", string(recordErr.Outcome.Status)).
			Msg("Handle Message: push was attempted but its outcome was not recorded")
	} else {
		zlog.Logger.Error().Err(err).Str("notice_id", ev.NoticeID).Msg("Handle Message: push pipeline failed")
	}

	if h.failures == nil {
		return
	}

	if pubErr := h.failures.PublishFailed(ev, err, strategy); pubErr != nil {
		zlog.Logger.Error().Err(pubErr).Msgf("failed to move event %s to DLQ", ev.ID)
	}
}
