// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/wneessen/cuaca/internal/logger"
)

// Cancel stops a pending timer. Calling it after the timer fired is a no-op.
type Cancel func()

// Scheduler runs one-shot timers on a gocron scheduler.
type Scheduler struct {
	clock     clockwork.Clock
	logger    *logger.Logger
	scheduler gocron.Scheduler
}

// New creates and starts a Scheduler. A nil clock selects the real clock.
func New(log *logger.Logger, clock clockwork.Clock) (*Scheduler, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.New(slog.LevelInfo)
	}
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock), gocron.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	scheduler.Start()

	return &Scheduler{clock: clock, logger: log, scheduler: scheduler}, nil
}

// After runs task once after the given delay. Delays of zero or less run the task immediately.
func (s *Scheduler) After(delay time.Duration, name string, task func()) (Cancel, error) {
	startAt := gocron.OneTimeJobStartImmediately()
	if delay > 0 {
		startAt = gocron.OneTimeJobStartDateTime(s.clock.Now().Add(delay))
	}
	job, err := s.newJob(startAt, name, task)
	if errors.Is(err, gocron.ErrOneTimeJobStartDateTimePast) {
		job, err = s.newJob(gocron.OneTimeJobStartImmediately(), name, task)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}

	return s.cancelFunc(job.ID(), name), nil
}

// Shutdown stops the scheduler and drops all pending timers.
func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) newJob(startAt gocron.OneTimeJobStartAtOption, name string, task func()) (gocron.Job, error) {
	return s.scheduler.NewJob(
		gocron.OneTimeJob(startAt),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithLimitedRuns(1),
	)
}

func (s *Scheduler) cancelFunc(id uuid.UUID, name string) Cancel {
	return func() {
		err := s.scheduler.RemoveJob(id)
		if err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
			s.logger.Warn("failed to cancel timer", slog.String("timer", name), logger.Err(err))
		}
	}
}
