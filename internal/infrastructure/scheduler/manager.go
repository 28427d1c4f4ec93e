// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"helpdesk/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using a single gocron instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterAutoCloseJob registers the stale-ticket sweep: answered tickets
// whose conversation has been quiet on the customer side for too long get
// closed automatically. The job runs immediately on startup and then every
// intervalHours.
func (m *SchedulerManager) RegisterAutoCloseJob(job BatchJob, intervalHours int) error {
	if intervalHours <= 0 {
		intervalHours = 24
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Duration(intervalHours)*time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processAutoClose(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("ticket", "auto-close"),
		gocron.WithName("ticket-auto-close"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered auto-close job", "interval_hours", intervalHours)
	return nil
}

func (m *SchedulerManager) processAutoClose(ctx context.Context, job BatchJob) {
	m.logger.Debugw("auto-close sweep started")

	startTime := time.Now()

	closedCount, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("auto-close sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if closedCount > 0 {
		m.logger.Infow("auto-close sweep completed",
			"closed", closedCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no stale tickets to close",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
