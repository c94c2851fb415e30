package push

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	mocks "github.com/aliskhannn/notice-pusher/internal/mocks/service/push"
	"github.com/aliskhannn/notice-pusher/internal/model"
)

func TestDispatcher_Dispatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockSender(ctrl)
	msg := Compose(model.Notice{ID: "n1", Title: "t", Category: "c"})

	senderMock.EXPECT().Send(gomock.Any(), msg).Return("m1", nil)

	receipt, err := NewDispatcher(senderMock, nil).Dispatch(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "m1", receipt.MessageID)
}

func TestDispatcher_Dispatch_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockSender(ctrl)
	providerErr := errors.New("quota exceeded")

	senderMock.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", providerErr).Times(1)

	_, err := NewDispatcher(senderMock, nil).Dispatch(context.Background(), model.NotificationMessage{Topic: Topic})

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "quota exceeded", deliveryErr.Error())
	assert.ErrorIs(t, err, providerErr)
}

func TestDispatcher_Dispatch_LimiterCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockSender(ctrl)
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDispatcher(senderMock, rate.NewLimiter(1, 1)).Dispatch(ctx, model.NotificationMessage{})

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.ErrorIs(t, err, context.Canceled)
}
