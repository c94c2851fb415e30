package push

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/metrics"
	"github.com/aliskhannn/notice-pusher/internal/model"
	"github.com/aliskhannn/notice-pusher/internal/repository/notice"
)

//go:generate mockgen -source=recorder.go -destination=../../mocks/service/push/store_mock.go -package=mocks

// outcomeStore applies the combined conditional write: push_requested is
// cleared and the terminal status stored, but only while the document still
// carries the request identified by ref.
type outcomeStore interface {
	RecordOutcome(ctx context.Context, strategy retry.Strategy, ref model.NoticeRef, outcome model.PushOutcome) error
}

// RecordWriteError means a dispatch attempt happened but its outcome could not
// be stored. The notice may stay in the requested state or lose its audit trail.
type RecordWriteError struct {
	NoticeID string
	Outcome  model.PushOutcome
	Err      error
}

func (e *RecordWriteError) Error() string {
	return fmt.Sprintf("record push outcome %s for notice %s: %v", e.Outcome.Status, e.NoticeID, e.Err)
}

func (e *RecordWriteError) Unwrap() error {
	return e.Err
}

// Recorder writes the result of a dispatch attempt back to the notice.
type Recorder struct {
	store    outcomeStore
	strategy retry.Strategy
}

// NewRecorder creates a recorder. Transport failures of the write are retried
// with strategy; the write is a compare-and-set so repeating it is harmless.
func NewRecorder(store outcomeStore, strategy retry.Strategy) *Recorder {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Recorder{store: store, strategy: strategy}
}

// OutcomeOf converts the result of a dispatch into the status to record.
func OutcomeOf(receipt model.DeliveryReceipt, sendErr error) model.PushOutcome {
	if sendErr != nil {
		return model.PushOutcome{Status: model.PushStatusFailed, Error: sendErr.Error()}
	}

	return model.PushOutcome{Status: model.PushStatusSuccess, MessageID: receipt.MessageID}
}

// Record stores the outcome for ref. A superseded request is logged and
// reported as success; any other failure is returned as *RecordWriteError.
func (r *Recorder) Record(ctx context.Context, ref model.NoticeRef, receipt model.DeliveryReceipt, sendErr error) error {
	outcome := OutcomeOf(receipt, sendErr)

	superseded := false
	err := retry.Do(func() error {
		err := r.store.RecordOutcome(ctx, r.strategy, ref, outcome)
		if errors.Is(err, notice.ErrOutcomeSuperseded) {
			superseded = true
			return nil
		}

		return err
	}, r.strategy)

	if err != nil {
		metrics.PushRecordErrors.Inc()
		zlog.Logger.Error().
			Err(err).
			Str("notice_id", ref.ID).
			Str("push_request_id", ref.PushRequestID).
			Str("status", string(outcome.Status)).
			Str("push_error", outcome.Error).
			Msg("failed to record push outcome, notice may stay requested")

		return &RecordWriteError{NoticeID: ref.ID, Outcome: outcome, Err: err}
	}

	if superseded {
		zlog.Logger.Warn().
			Str("notice_id", ref.ID).
			Str("push_request_id", ref.PushRequestID).
			Str("status", string(outcome.Status)).
			Msg("push request superseded before outcome was recorded")
		return nil
	}

	zlog.Logger.Info().
		Str("notice_id", ref.ID).
		Str("status", string(outcome.Status)).
		Msg("push outcome recorded")

	return nil
}
