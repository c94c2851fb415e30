package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

func TestDecodeEvent(t *testing.T) {
	before := model.Notice{ID: "n1", Title: "Server maintenance", Category: "System"}
	after := before
	after.PushRequested = true
	after.PushRequestID = "r1"

	ev := model.NewUpdateEvent(before, after)
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	got, err := DecodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, "n1", got.NoticeID)
	assert.True(t, got.After.PushRequested)
	assert.False(t, got.Before.PushRequested)
	assert.Equal(t, model.EventSourceRabbitMQ, got.Source)
}

func TestDecodeEvent_FillsNoticeIDFromAfter(t *testing.T) {
	got, err := DecodeEvent([]byte(`{"after":{"id":"n2","push_requested":true}}`))
	require.NoError(t, err)
	assert.Equal(t, "n2", got.NoticeID)
	assert.Equal(t, model.EventSourceRabbitMQ, got.Source)
}

func TestDecodeEvent_Invalid(t *testing.T) {
	_, err := DecodeEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`{"before":{},"after":{}}`))
	assert.Error(t, err)
}

func TestForward_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgChan := make(chan []byte)
	consumeErr := make(chan error, 1)
	out := make(chan model.UpdateEvent, 1)

	done := make(chan error, 1)
	go func() {
		done <- forward(ctx, msgChan, consumeErr, out, func() error { return nil })
	}()

	body, err := json.Marshal(model.NewUpdateEvent(model.Notice{ID: "n1"}, model.Notice{ID: "n1"}))
	require.NoError(t, err)

	msgChan <- []byte("not json")
	msgChan <- body

	select {
	case ev := <-out:
		assert.Equal(t, "n1", ev.NoticeID)
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded")
	}

	consumeErr <- errors.New("channel closed")
	assert.EqualError(t, <-done, "channel closed")
}

func TestForward_CancelsConsumerOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	msgChan := make(chan []byte)
	consumeErr := make(chan error, 1)
	out := make(chan model.UpdateEvent)

	// Stands in for the AMQP consumer: it keeps delivering until the
	// subscription is cancelled, then returns.
	cancelled := make(chan struct{})
	go func() {
		for {
			select {
			case <-cancelled:
				consumeErr <- nil
				return
			case msgChan <- []byte(`{"notice_id":"n1"}`):
			}
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- forward(ctx, msgChan, consumeErr, out, func() error {
			close(cancelled)
			return nil
		})
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("forward did not stop after shutdown")
	}
}

func TestForward_DrainsWhenCancelFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgChan := make(chan []byte)
	consumeErr := make(chan error, 1)

	go func() {
		msgChan <- []byte(`{"notice_id":"n1"}`)
		consumeErr <- nil
	}()

	err := forward(ctx, msgChan, consumeErr, make(chan model.UpdateEvent), func() error {
		return errors.New("channel/connection is not open")
	})
	assert.NoError(t, err)
}
