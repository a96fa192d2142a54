package scheduler

import (
	"context"
	"sync"
	"time"

	"essentialfeed/backend/internal/logger"
)

const finalValidationTimeout = 10 * time.Second

// CacheValidator evicts cached state that can no longer be read.
type CacheValidator interface {
	ValidateCache(ctx context.Context) error
}

// Scheduler validates the feed cache at start, on every tick and once more on Stop.
type Scheduler struct {
	validator  CacheValidator
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current validation pass
	mu         sync.Mutex         // protects cancelFunc
}

func New(validator CacheValidator, interval time.Duration) *Scheduler {
	return &Scheduler{
		validator: validator,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "validate", "resource", "feed_cache", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running pass, waits for the loop to exit and then runs one
// final validation so the cache is left readable on shutdown.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), finalValidationTimeout)
		defer cancel()
		s.validate(ctx)
		logger.Info("scheduler stopped", "module", "scheduler", "action", "validate", "resource", "feed_cache", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) tick() {
	select {
	case <-s.stopCh:
		return
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	s.validate(ctx)
}

func (s *Scheduler) validate(ctx context.Context) {
	if err := s.validator.ValidateCache(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("cache validation cancelled", "module", "scheduler", "action", "validate", "resource", "feed_cache", "result", "cancelled")
			return
		}
		logger.Error("cache validation failed", "module", "scheduler", "action", "validate", "resource", "feed_cache", "result", "failed", "error", err)
		return
	}
	logger.Debug("cache validated", "module", "scheduler", "action", "validate", "resource", "feed_cache", "result", "ok")
}
