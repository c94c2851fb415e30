package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

//go:generate mockgen -source=trigger.go -destination=../mocks/worker/mock.go -package=mocks
type eventSource interface {
	Consume(ctx context.Context, out chan<- model.UpdateEvent, strategy retry.Strategy) error
}

type eventHandler interface {
	HandleMessage(ctx context.Context, ev model.UpdateEvent, strategy retry.Strategy)
}

// Trigger receives notice update events from the store and hands each one to
// the push pipeline on a pool of workers. Events for different notices are
// processed independently.
type Trigger struct {
	source  eventSource
	handler eventHandler
}

func NewTrigger(s eventSource, h eventHandler) *Trigger {
	return &Trigger{
		source:  s,
		handler: h,
	}
}

func (t *Trigger) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	events := make(chan model.UpdateEvent, workerCount*10)

	go func() {
		if err := t.source.Consume(ctx, events, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume update events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case ev, ok := <-events:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					t.handler.HandleMessage(ctx, ev, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("trigger stopped")
}
