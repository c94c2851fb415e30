package notice

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notice-pusher/internal/mocks/service/notice"
	"github.com/aliskhannn/notice-pusher/internal/model"
	noticerepo "github.com/aliskhannn/notice-pusher/internal/repository/notice"
)

func TestService_CreateNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, nil, cacheMock)
	strategy := retry.Strategy{}

	repoMock.EXPECT().
		CreateNotice(gomock.Any(), gomock.AssignableToTypeOf(model.Notice{})).
		DoAndReturn(func(_ context.Context, n model.Notice) (string, error) {
			assert.NotEmpty(t, n.ID)
			assert.Equal(t, "Server maintenance", n.Title)
			return n.ID, nil
		})
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), string(model.PushStatusUnset)).Return(nil)

	id, err := svc.CreateNotice(context.Background(), strategy, model.Notice{Title: "Server maintenance"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestService_RequestPush_PublishesEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	eventsMock := mocks.NewMockeventPublisher(ctrl)
	svc := NewService(repoMock, eventsMock, nil)
	strategy := retry.Strategy{}

	before := model.Notice{ID: "n1", Title: "t"}
	after := before
	after.PushRequested = true
	after.PushRequestID = "r1"

	repoMock.EXPECT().RequestPush(gomock.Any(), "n1", gomock.Any()).Return(before, after, nil)
	eventsMock.EXPECT().
		Publish(gomock.AssignableToTypeOf(model.UpdateEvent{}), strategy).
		DoAndReturn(func(ev model.UpdateEvent, _ retry.Strategy) error {
			assert.Equal(t, "n1", ev.NoticeID)
			assert.False(t, ev.Before.PushRequested)
			assert.True(t, ev.After.PushRequested)
			return nil
		})

	n, err := svc.RequestPush(context.Background(), strategy, "n1")
	require.NoError(t, err)
	assert.Equal(t, "r1", n.PushRequestID)
}

func TestService_RequestPush_AlreadyRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	eventsMock := mocks.NewMockeventPublisher(ctrl)
	svc := NewService(repoMock, eventsMock, nil)

	repoMock.EXPECT().
		RequestPush(gomock.Any(), "n1", gomock.Any()).
		Return(model.Notice{}, model.Notice{}, noticerepo.ErrPushAlreadyRequested)
	eventsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RequestPush(context.Background(), retry.Strategy{}, "n1")
	assert.ErrorIs(t, err, noticerepo.ErrPushAlreadyRequested)
}

func TestService_UpdateNotice_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	eventsMock := mocks.NewMockeventPublisher(ctrl)
	svc := NewService(repoMock, eventsMock, nil)

	title := "new"
	patch := model.NoticePatch{Title: &title}

	repoMock.EXPECT().
		UpdateNotice(gomock.Any(), "n1", patch).
		Return(model.Notice{ID: "n1", Title: "old"}, model.Notice{ID: "n1", Title: "new"}, nil)
	eventsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))

	n, err := svc.UpdateNotice(context.Background(), retry.Strategy{}, "n1", patch)
	assert.NoError(t, err)
	assert.Equal(t, "new", n.Title)
}

func TestService_UpdateNotice_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	svc := NewService(repoMock, nil, nil)

	repoMock.EXPECT().
		UpdateNotice(gomock.Any(), "n1", gomock.Any()).
		Return(model.Notice{ID: "n1"}, model.Notice{ID: "n1", Category: "System"}, nil)

	n, err := svc.UpdateNotice(context.Background(), retry.Strategy{}, "n1", model.NoticePatch{})
	assert.NoError(t, err)
	assert.Equal(t, "System", n.Category)
}

func TestService_GetPushStatus_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock)
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notice:push_status:n1").Return("SUCCESS", nil)

	status, err := svc.GetPushStatus(context.Background(), strategy, "n1")
	assert.NoError(t, err)
	assert.Equal(t, model.PushStatusSuccess, status)
}

func TestService_GetPushStatus_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notice:push_status:n1").Return("", redis.Nil)
	repoMock.EXPECT().GetPushStatus(gomock.Any(), "n1").Return(model.PushStatusFailed, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notice:push_status:n1", "FAILED").Return(nil)

	status, err := svc.GetPushStatus(context.Background(), strategy, "n1")
	assert.NoError(t, err)
	assert.Equal(t, model.PushStatusFailed, status)
}

func TestService_GetPushStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	repoMock.EXPECT().GetPushStatus(gomock.Any(), "missing").Return(model.PushStatus(""), noticerepo.ErrNoticeNotFound)

	_, err := svc.GetPushStatus(context.Background(), retry.Strategy{}, "missing")
	assert.ErrorIs(t, err, noticerepo.ErrNoticeNotFound)
}

func TestService_RecordOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)
	strategy := retry.Strategy{}

	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}
	outcome := model.PushOutcome{Status: model.PushStatusSuccess, MessageID: "m1"}

	repoMock.EXPECT().RecordOutcome(gomock.Any(), ref, outcome).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notice:push_status:n1", "SUCCESS").Return(nil)

	assert.NoError(t, svc.RecordOutcome(context.Background(), strategy, ref, outcome))
}

func TestService_RecordOutcome_SupersededSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)

	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}

	repoMock.EXPECT().RecordOutcome(gomock.Any(), ref, gomock.Any()).Return(noticerepo.ErrOutcomeSuperseded)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.RecordOutcome(context.Background(), retry.Strategy{}, ref, model.PushOutcome{Status: model.PushStatusFailed})
	assert.ErrorIs(t, err, noticerepo.ErrOutcomeSuperseded)
}

func TestService_CancelPush_PublishesFallingEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	eventsMock := mocks.NewMockeventPublisher(ctrl)
	// A nil cache fails the test if the stored status were touched.
	svc := NewService(repoMock, eventsMock, nil)
	strategy := retry.Strategy{}

	before := model.Notice{ID: "n1", PushRequested: true, PushRequestID: "r1", PushStatus: model.PushStatusFailed}
	after := before
	after.PushRequested = false

	repoMock.EXPECT().CancelPush(gomock.Any(), "n1", "r1").Return(before, after, nil)
	eventsMock.EXPECT().
		Publish(gomock.AssignableToTypeOf(model.UpdateEvent{}), strategy).
		DoAndReturn(func(ev model.UpdateEvent, _ retry.Strategy) error {
			assert.True(t, ev.Before.PushRequested)
			assert.False(t, ev.After.PushRequested)
			return nil
		})

	n, err := svc.CancelPush(context.Background(), strategy, "n1", "r1")
	require.NoError(t, err)
	assert.False(t, n.PushRequested)
	assert.Equal(t, model.PushStatusFailed, n.PushStatus)
}

func TestService_CancelPush_ThenRequestAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	svc := NewService(repoMock, nil, nil)

	stuck := model.Notice{ID: "n1", PushRequested: true, PushRequestID: "r1"}
	cleared := stuck
	cleared.PushRequested = false
	raised := cleared
	raised.PushRequested = true
	raised.PushRequestID = "r2"

	gomock.InOrder(
		repoMock.EXPECT().CancelPush(gomock.Any(), "n1", "").Return(stuck, cleared, nil),
		repoMock.EXPECT().
			RequestPush(gomock.Any(), "n1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, requestID string) (model.Notice, model.Notice, error) {
				assert.NotEqual(t, "r1", requestID)
				return cleared, raised, nil
			}),
	)

	_, err := svc.CancelPush(context.Background(), retry.Strategy{}, "n1", "")
	require.NoError(t, err)

	n, err := svc.RequestPush(context.Background(), retry.Strategy{}, "n1")
	require.NoError(t, err)
	assert.True(t, n.PushRequested)
}

func TestService_CancelPush_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknoticeRepository(ctrl)
	eventsMock := mocks.NewMockeventPublisher(ctrl)
	svc := NewService(repoMock, eventsMock, nil)

	repoMock.EXPECT().
		CancelPush(gomock.Any(), "n1", "").
		Return(model.Notice{}, model.Notice{}, noticerepo.ErrNoPushRequested)
	eventsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CancelPush(context.Background(), retry.Strategy{}, "n1", "")
	assert.ErrorIs(t, err, noticerepo.ErrNoPushRequested)
}
