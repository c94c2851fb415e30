package push

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/metrics"
	"github.com/aliskhannn/notice-pusher/internal/model"
	"github.com/aliskhannn/notice-pusher/internal/repository/notice"
)

//go:generate mockgen -source=pipeline.go -destination=../../mocks/service/push/reader_mock.go -package=mocks

type noticeReader interface {
	GetNotice(ctx context.Context, id string) (model.Notice, error)
}

// Result describes what the pipeline did with an update event.
type Result string

const (
	ResultSkipped Result = "skipped" // not a rising edge
	ResultStale   Result = "stale"   // edge already handled or superseded
	ResultSent    Result = "sent"
	ResultFailed  Result = "failed"
)

// Pipeline runs one update event through filter, composer, dispatcher and
// recorder. It holds no per-event state and is safe for concurrent use.
type Pipeline struct {
	notices    noticeReader
	dispatcher *Dispatcher
	recorder   *Recorder
}

func NewPipeline(notices noticeReader, dispatcher *Dispatcher, recorder *Recorder) *Pipeline {
	return &Pipeline{notices: notices, dispatcher: dispatcher, recorder: recorder}
}

// Handle processes a single update event. The returned error is non-nil only
// when the notice could not be read or the outcome could not be recorded.
func (p *Pipeline) Handle(ctx context.Context, ev model.UpdateEvent) (Result, error) {
	after := ev.After
	if after.ID == "" {
		after.ID = ev.NoticeID
	}

	if !ShouldDispatch(ev.Before, after) {
		metrics.PushEvents.WithLabelValues(metrics.EventSkipped).Inc()
		return ResultSkipped, nil
	}

	// A redelivered event carries the same edge; the stored document tells
	// whether it was already processed.
	current, err := p.notices.GetNotice(ctx, after.ID)
	if err != nil {
		if errors.Is(err, notice.ErrNoticeNotFound) {
			zlog.Logger.Warn().Str("notice_id", after.ID).Msg("notice deleted before push, skipping")
			metrics.PushEvents.WithLabelValues(metrics.EventStale).Inc()
			return ResultStale, nil
		}

		return "", fmt.Errorf("check notice %s: %w", after.ID, err)
	}

	if !current.PushRequested || current.PushRequestID != after.PushRequestID {
		zlog.Logger.Info().
			Str("notice_id", after.ID).
			Str("event_id", ev.ID.String()).
			Msg("push request already handled, skipping")
		metrics.PushEvents.WithLabelValues(metrics.EventStale).Inc()
		return ResultStale, nil
	}

	metrics.PushEvents.WithLabelValues(metrics.EventDispatched).Inc()

	// Once an attempt starts it runs to completion and its outcome is recorded,
	// even if the worker is shutting down.
	attemptCtx := context.WithoutCancel(ctx)

	msg := Compose(after)
	zlog.Logger.Info().
		Str("notice_id", after.ID).
		Str("topic", msg.Topic).
		Msgf("push requested: %s", msg.Title)

	result := ResultSent
	receipt, sendErr := p.dispatcher.Dispatch(attemptCtx, msg)
	if sendErr != nil {
		result = ResultFailed
		metrics.PushDeliveries.WithLabelValues(string(model.PushStatusFailed)).Inc()
		zlog.Logger.Error().Err(sendErr).Str("notice_id", after.ID).Msg("push delivery failed")
	} else {
		metrics.PushDeliveries.WithLabelValues(string(model.PushStatusSuccess)).Inc()
		zlog.Logger.Info().
			Str("notice_id", after.ID).
			Str("message_id", receipt.MessageID).
			Msg("push delivered")
	}

	if err := p.recorder.Record(attemptCtx, after.Ref(), receipt, sendErr); err != nil {
		return result, err
	}

	return result, nil
}
