package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/service/policy"
)

// refreshTimeout bounds a single refresh including its retries.
const refreshTimeout = 2 * time.Minute

// PolicyRefresher reloads the pricing policy.
type PolicyRefresher interface {
	Refresh(ctx context.Context) policy.LoadResult
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	refresher PolicyRefresher
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a new scheduler instance refreshing the policy on schedule
// (standard cron syntax or descriptors such as "@every 60s").
func NewScheduler(schedule string, refresher PolicyRefresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		schedule:  schedule,
		refresher: refresher,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the periodic refresh and triggers an immediate one in the background.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("policy_refresh", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.refreshPolicy); err != nil {
		s.logger.Error("failed to schedule policy refresh", zap.Error(err))
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.refreshPolicy()
	}()

	s.cron.Start()
	return nil
}

// Stop cancels in-flight refreshes and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
}

func (s *Scheduler) refreshPolicy() {
	if s.ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, refreshTimeout)
	defer cancel()

	result := s.refresher.Refresh(ctx)
	if result.Err != nil {
		s.logger.Warn("policy refresh fell back to default", zap.Error(result.Err))
		return
	}
	s.logger.Debug("policy refresh completed", zap.String("origin", string(result.Origin)))
}
