package notice

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notice/mock.go -package=mocks

type eventPublisher interface {
	Publish(ev model.UpdateEvent, strategy retry.Strategy) error
}

type noticeRepository interface {
	CreateNotice(context.Context, model.Notice) (string, error)
	GetNotice(context.Context, string) (model.Notice, error)
	GetAllNotices(context.Context) ([]model.Notice, error)
	UpdateNotice(ctx context.Context, id string, patch model.NoticePatch) (model.Notice, model.Notice, error)
	RequestPush(ctx context.Context, id, requestID string) (model.Notice, model.Notice, error)
	CancelPush(ctx context.Context, id, requestID string) (model.Notice, model.Notice, error)
	RecordOutcome(ctx context.Context, ref model.NoticeRef, outcome model.PushOutcome) error
	GetPushStatus(context.Context, string) (model.PushStatus, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service manages notices on behalf of the admin API and stores push outcomes
// for the push pipeline. Every committed update is published as an update event.
type Service struct {
	repo   noticeRepository
	events eventPublisher
	cache  cache
}

// NewService creates a notice service. events may be nil when update events
// are captured from the database change stream instead of being published here.
func NewService(repo noticeRepository, events eventPublisher, cache cache) *Service {
	return &Service{repo: repo, events: events, cache: cache}
}

func statusKey(id string) string {
	return "notice:push_status:" + id
}

func (s *Service) CreateNotice(ctx context.Context, strategy retry.Strategy, n model.Notice) (string, error) {
	n.ID = uuid.NewString()

	id, err := s.repo.CreateNotice(ctx, n)
	if err != nil {
		return "", fmt.Errorf("create notice: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.PushStatusUnset)

	return id, nil
}

func (s *Service) GetNotice(ctx context.Context, id string) (model.Notice, error) {
	n, err := s.repo.GetNotice(ctx, id)
	if err != nil {
		return model.Notice{}, fmt.Errorf("get notice: %w", err)
	}

	return n, nil
}

func (s *Service) GetAllNotices(ctx context.Context) ([]model.Notice, error) {
	notices, err := s.repo.GetAllNotices(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all notices: %w", err)
	}

	return notices, nil
}

// UpdateNotice edits title and category and publishes the resulting update.
func (s *Service) UpdateNotice(ctx context.Context, strategy retry.Strategy, id string, patch model.NoticePatch) (model.Notice, error) {
	before, after, err := s.repo.UpdateNotice(ctx, id, patch)
	if err != nil {
		return model.Notice{}, fmt.Errorf("update notice: %w", err)
	}

	s.publish(strategy, before, after)

	return after, nil
}

// RequestPush raises the push request flag with a new request token. The
// resulting rising edge is what the push pipeline reacts to.
func (s *Service) RequestPush(ctx context.Context, strategy retry.Strategy, id string) (model.Notice, error) {
	before, after, err := s.repo.RequestPush(ctx, id, uuid.NewString())
	if err != nil {
		return model.Notice{}, fmt.Errorf("request push: %w", err)
	}

	s.publish(strategy, before, after)

	return after, nil
}

// CancelPush withdraws a pending push request so it can be raised again. An
// empty requestID cancels whichever request is pending.
func (s *Service) CancelPush(ctx context.Context, strategy retry.Strategy, id, requestID string) (model.Notice, error) {
	before, after, err := s.repo.CancelPush(ctx, id, requestID)
	if err != nil {
		return model.Notice{}, fmt.Errorf("cancel push: %w", err)
	}

	zlog.Logger.Info().
		Str("id", id).
		Str("push_request_id", before.PushRequestID).
		Msg("push request cancelled")

	s.publish(strategy, before, after)

	return after, nil
}

func (s *Service) GetPushStatus(ctx context.Context, strategy retry.Strategy, id string) (model.PushStatus, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, statusKey(id))
	if err == nil {
		return model.PushStatus(status), nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to get push status from cache")
	}

	pushStatus, err := s.repo.GetPushStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get push status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, pushStatus)

	return pushStatus, nil
}

// RecordOutcome writes a dispatch outcome and refreshes the cached status.
func (s *Service) RecordOutcome(ctx context.Context, strategy retry.Strategy, ref model.NoticeRef, outcome model.PushOutcome) error {
	if err := s.repo.RecordOutcome(ctx, ref, outcome); err != nil {
		return fmt.Errorf("record push outcome: %w", err)
	}

	s.cacheStatus(ctx, strategy, ref.ID, outcome.Status)

	return nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id string, status model.PushStatus) {
	if err := s.cache.SetWithRetry(ctx, strategy, statusKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to cache push status")
	}
}

func (s *Service) publish(strategy retry.Strategy, before, after model.Notice) {
	if s.events == nil {
		return
	}

	ev := model.NewUpdateEvent(before, after)
	if err := s.events.Publish(ev, strategy); err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("id", after.ID).
			Str("event_id", ev.ID.String()).
			Msg("failed to publish notice update event")
	}
}
