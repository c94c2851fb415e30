package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/metrics"
)

//go:generate mockgen -source=stale.go -destination=../mocks/audit/mock.go -package=mocks
type staleRequestFinder interface {
	GetStaleRequests(ctx context.Context, before time.Time) ([]string, error)
}

// StaleAudit periodically reports notices whose push request was never
// processed, for example because the update event was lost or the outcome
// could not be recorded. It only reports; it never re-sends.
type StaleAudit struct {
	finder     staleRequestFinder
	staleAfter time.Duration
	parser     cron.Parser
	now        func() time.Time
}

func NewStaleAudit(finder staleRequestFinder, staleAfter time.Duration) *StaleAudit {
	return &StaleAudit{
		finder:     finder,
		staleAfter: staleAfter,
		parser:     cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		now:        time.Now,
	}
}

// Check runs a single audit pass and returns the stale notice IDs.
func (a *StaleAudit) Check(ctx context.Context) ([]string, error) {
	ids, err := a.finder.GetStaleRequests(ctx, a.now().Add(-a.staleAfter))
	if err != nil {
		return nil, fmt.Errorf("find stale push requests: %w", err)
	}

	metrics.StaleRequests.Set(float64(len(ids)))

	for _, id := range ids {
		zlog.Logger.Warn().
			Str("notice_id", id).
			Dur("stale_after", a.staleAfter).
			Msg("push request not processed in time")
	}

	return ids, nil
}

// Run schedules Check with the given cron spec until ctx is done.
func (a *StaleAudit) Run(ctx context.Context, schedule string) error {
	sched, err := a.parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("parse audit schedule %q: %w", schedule, err)
	}

	c := cron.New(cron.WithParser(a.parser))
	c.Schedule(sched, cron.FuncJob(func() {
		if _, err := a.Check(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("stale push request audit failed")
		}
	}))

	c.Start()
	zlog.Logger.Info().Str("schedule", schedule).Msg("stale push request audit started")

	<-ctx.Done()
	<-c.Stop().Done()
	zlog.Logger.Print("stale push request audit stopped")

	return nil
}
