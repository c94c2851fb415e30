package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/notice-pusher/internal/mocks/audit"
)

func TestStaleAudit_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockstaleRequestFinder(ctrl)
	a := NewStaleAudit(finder, 5*time.Minute)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	finder.EXPECT().
		GetStaleRequests(gomock.Any(), now.Add(-5*time.Minute)).
		Return([]string{"n1", "n7"}, nil)

	ids, err := a.Check(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"n1", "n7"}, ids)
}

func TestStaleAudit_Check_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockstaleRequestFinder(ctrl)
	a := NewStaleAudit(finder, time.Minute)

	finder.EXPECT().GetStaleRequests(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := a.Check(context.Background())
	assert.Error(t, err)
}

func TestStaleAudit_Run_InvalidSchedule(t *testing.T) {
	a := NewStaleAudit(nil, time.Minute)

	err := a.Run(context.Background(), "every now and then")
	assert.Error(t, err)
}

func TestStaleAudit_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockstaleRequestFinder(ctrl)
	finder.EXPECT().GetStaleRequests(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	a := NewStaleAudit(finder, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx, "@every 1h")
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("audit did not stop after cancel")
	}
}
