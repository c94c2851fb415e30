package push

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notice-pusher/internal/mocks/service/push"
	"github.com/aliskhannn/notice-pusher/internal/model"
	"github.com/aliskhannn/notice-pusher/internal/repository/notice"
)

func TestOutcomeOf(t *testing.T) {
	ok := OutcomeOf(model.DeliveryReceipt{MessageID: "m1"}, nil)
	assert.Equal(t, model.PushOutcome{Status: model.PushStatusSuccess, MessageID: "m1"}, ok)

	failed := OutcomeOf(model.DeliveryReceipt{}, &DeliveryError{Reason: "quota exceeded"})
	assert.Equal(t, model.PushOutcome{Status: model.PushStatusFailed, Error: "quota exceeded"}, failed)
}

func TestRecorder_Record_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockoutcomeStore(ctrl)
	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}

	storeMock.EXPECT().
		RecordOutcome(gomock.Any(), testStrategy, ref, model.PushOutcome{Status: model.PushStatusSuccess, MessageID: "m1"}).
		Return(nil)

	err := NewRecorder(storeMock, testStrategy).Record(context.Background(), ref, model.DeliveryReceipt{MessageID: "m1"}, nil)
	assert.NoError(t, err)
}

func TestRecorder_Record_Superseded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockoutcomeStore(ctrl)
	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}

	storeMock.EXPECT().
		RecordOutcome(gomock.Any(), gomock.Any(), ref, gomock.Any()).
		Return(fmt.Errorf("record push outcome: %w", notice.ErrOutcomeSuperseded))

	err := NewRecorder(storeMock, testStrategy).Record(context.Background(), ref, model.DeliveryReceipt{}, errors.New("boom"))
	assert.NoError(t, err)
}

func TestRecorder_Record_RetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockoutcomeStore(ctrl)
	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	gomock.InOrder(
		storeMock.EXPECT().RecordOutcome(gomock.Any(), strategy, ref, gomock.Any()).Return(errors.New("connection reset")),
		storeMock.EXPECT().RecordOutcome(gomock.Any(), strategy, ref, gomock.Any()).Return(nil),
	)

	err := NewRecorder(storeMock, strategy).Record(context.Background(), ref, model.DeliveryReceipt{MessageID: "m1"}, nil)
	assert.NoError(t, err)
}

func TestRecorder_Record_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockoutcomeStore(ctrl)
	ref := model.NoticeRef{ID: "n1", PushRequestID: "r1"}

	storeMock.EXPECT().
		RecordOutcome(gomock.Any(), gomock.Any(), ref, gomock.Any()).
		Return(errors.New("database is down")).
		MinTimes(1)

	err := NewRecorder(storeMock, testStrategy).Record(context.Background(), ref, model.DeliveryReceipt{}, errors.New("quota exceeded"))

	var recordErr *RecordWriteError
	require.ErrorAs(t, err, &recordErr)
	assert.Equal(t, "n1", recordErr.NoticeID)
	assert.Equal(t, model.PushStatusFailed, recordErr.Outcome.Status)
	assert.Equal(t, "quota exceeded", recordErr.Outcome.Error)
}

func TestNewRecorder_ClampsAttempts(t *testing.T) {
	r := NewRecorder(nil, retry.Strategy{})
	assert.Equal(t, 1, r.strategy.Attempts)
}
