package scheduler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotInitialized = errors.New("scheduler not initialized")
	ErrEmptyJobName   = errors.New("job name is required")
	ErrEmptyCronExpr  = errors.New("cron expression is required")
)

// Service runs background jobs such as cache warming. The server owns one
// instance for its lifetime.
type Service struct {
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

// NewService builds a scheduler that logs panicking jobs. Extra options are
// passed through to gocron.
func NewService(opts ...gocron.SchedulerOption) (*Service, error) {
	panicListener := gocron.WithGlobalJobOptions(
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
				log.Error().
					Str("job_id", jobID.String()).
					Str("job_name", jobName).
					Interface("panic", recoverData).
					Msg("Scheduler job panicked")
			}),
		),
	)

	sched, err := gocron.NewScheduler(append([]gocron.SchedulerOption{panicListener}, opts...)...)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("Scheduler initialized")
	return &Service{scheduler: sched}, nil
}

// JobCount reports how many jobs are registered.
func (s *Service) JobCount() int {
	if s == nil {
		return 0
	}
	return len(s.scheduler.Jobs())
}

func (s *Service) Start() {
	if s == nil {
		log.Error().Msg("Scheduler start requested before initialization")
		return
	}
	log.Info().Int("jobs", s.JobCount()).Msg("Scheduler starting")
	s.scheduler.Start()
}

// Stop shuts down the scheduler and waits for running jobs. Safe to call
// more than once.
func (s *Service) Stop() error {
	if s == nil {
		return ErrNotInitialized
	}
	s.stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob registers a cron-based job. cronExpr uses the standard five-field
// format.
func (s *Service) AddJob(name, cronExpr string, task func(), opts ...gocron.JobOption) (gocron.Job, error) {
	if s == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()

	timed := func() {
		start := time.Now()
		jobLogger.Debug().Msg("Scheduler job started")
		task()
		jobLogger.Debug().Dur("elapsed", time.Since(start)).Msg("Scheduler job completed")
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(timed),
		append([]gocron.JobOption{gocron.WithName(name)}, opts...)...,
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register scheduler job")
		return nil, err
	}
	jobLogger.Info().Msg("Scheduler job registered")
	return job, nil
}
