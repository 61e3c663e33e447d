package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/publish"
	"github.com/coursewave/coursewave-backend/internal/repos"
)

// DuePublisher is the slice of the orchestrator the loop needs.
type DuePublisher interface {
	ProcessDue(ctx context.Context, lessonID uuid.UUID, now time.Time) (publish.Outcome, error)
}

// Loop discovers due lessons and publishes them once per tick. The tick body
// runs inline in the loop goroutine, so a new tick cannot start while the
// previous one is still processing. Items are independent: one lesson's
// failure is recorded and the batch continues.
type Loop struct {
	log         *logger.Logger
	lessons     repos.LessonRepo
	orch        DuePublisher
	interval    time.Duration
	parallelism int
	now         func() time.Time

	mu   sync.RWMutex
	last *RunReport
}

func NewLoop(baseLog *logger.Logger, lessons repos.LessonRepo, orch DuePublisher, interval time.Duration, parallelism int) *Loop {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if parallelism <= 0 {
		parallelism = 1
	}
	return &Loop{
		log:         baseLog.With("component", "SchedulerLoop"),
		lessons:     lessons,
		orch:        orch,
		interval:    interval,
		parallelism: parallelism,
		now:         time.Now,
	}
}

func (l *Loop) Start(ctx context.Context) {
	go func() {
		l.log.Info("Scheduler loop starting", "interval", l.interval, "parallelism", l.parallelism)
		// Immediate scan first, to catch lessons that became due while the
		// process was down.
		l.tick(ctx)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				l.log.Info("Scheduler loop stopped")
				return
			case <-ticker.C:
				l.tick(ctx)
			}
		}
	}()
}

func (l *Loop) tick(ctx context.Context) {
	if _, err := l.RunTick(ctx); err != nil {
		l.log.Error("Due scan failed, retrying next interval", "error", err)
	}
}

// RunTick performs one scan-and-process pass. A failed due query aborts the
// whole tick: a partial due-set must never be skipped silently.
func (l *Loop) RunTick(ctx context.Context) (*RunReport, error) {
	now := l.now()
	due, err := l.lessons.FindDue(ctx, nil, now)
	if err != nil {
		return nil, fmt.Errorf("due scan: %w", err)
	}

	report := &RunReport{
		Timestamp:       now,
		Found:           len(due),
		Errors:          []ItemError{},
		CascadeFailures: []ItemError{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.parallelism)
	for _, lesson := range due {
		lesson := lesson
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					l.log.Error("Due processing panic", "lesson_id", lesson.ID, "panic", r)
					mu.Lock()
					report.Errors = append(report.Errors, ItemError{LessonID: lesson.ID, Reason: fmt.Sprintf("panic: %v", r)})
					mu.Unlock()
				}
			}()
			out, perr := l.orch.ProcessDue(gctx, lesson.ID, now)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case perr != nil:
				l.log.Error("Due processing failed", "lesson_id", lesson.ID, "error", perr)
				report.Errors = append(report.Errors, ItemError{LessonID: lesson.ID, Reason: perr.Error()})
			case out.Code == publish.OutcomePublished:
				report.Published++
				if out.CascadeErr != nil {
					l.log.Error("Cascade failed for published lesson", "lesson_id", lesson.ID, "error", out.CascadeErr)
					report.CascadeFailures = append(report.CascadeFailures, ItemError{LessonID: lesson.ID, Reason: out.CascadeErr.Error()})
				}
			case out.Code == publish.OutcomeRejected:
				reason := "rejected"
				if out.Reason != nil {
					reason = out.Reason.Error()
				}
				l.log.Warn("Due lesson rejected, remains scheduled", "lesson_id", lesson.ID, "reason", reason)
				report.Errors = append(report.Errors, ItemError{LessonID: lesson.ID, Reason: reason})
			default:
				report.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	l.mu.Lock()
	l.last = report
	l.mu.Unlock()

	l.log.Info("Publish scan complete",
		"found", report.Found,
		"published", report.Published,
		"skipped", report.Skipped,
		"errors", len(report.Errors),
		"cascade_failures", len(report.CascadeFailures),
	)
	return report, nil
}

// LastReport returns the most recent tick's report, or nil before the first
// completed tick.
func (l *Loop) LastReport() *RunReport {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.last
}
