// Package scheduler re-analyzes stored content on a fixed interval so saved
// scores track content edits without manual re-submission.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/seo"
)

// Store is the persistence interface for scheduler operations
type Store interface {
	ListContents(ctx context.Context, limit int) ([]*domain.ContentItem, error)
	GetAnalysis(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error)
	SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration // time between re-analysis sweeps
	BatchSize  int           // max items per sweep
	MaxWorkers int           // concurrent analyses per sweep
}

// Scheduler runs periodic re-analysis sweeps over stored content
type Scheduler struct {
	store      Store
	interval   time.Duration
	batchSize  int
	maxWorkers int
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// New creates a scheduler with the given configuration, applying defaults for
// unset values
func New(store Store, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}

	return &Scheduler{
		store:      store,
		interval:   cfg.Interval,
		batchSize:  cfg.BatchSize,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.reanalyzeWorker(ctx)

	lgr.Printf("[INFO] scheduler started, re-analysis every %v, batch %d", s.interval, s.batchSize)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// reanalyzeWorker periodically sweeps stored content
func (s *Scheduler) reanalyzeWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.reanalyzeAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reanalyzeAll(ctx)
		}
	}
}

// reanalyzeAll recomputes analyses for stored items that already have one.
// Items never analyzed are skipped, there is no keyword to score against.
func (s *Scheduler) reanalyzeAll(ctx context.Context) {
	items, err := s.store.ListContents(ctx, s.batchSize)
	if err != nil {
		lgr.Printf("[ERROR] failed to list contents for re-analysis: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	var refreshed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, item := range items {
		g.Go(func() error {
			rec, err := s.store.GetAnalysis(gctx, item.ID)
			if err != nil {
				lgr.Printf("[ERROR] failed to load analysis for content %d: %v", item.ID, err)
				return nil
			}
			if rec == nil {
				return nil
			}

			result := seo.Analyze(*item, rec.Keyword)
			result.AnalyzedAt = time.Now().UTC()
			update := &domain.AnalysisRecord{ContentID: item.ID, Keyword: rec.Keyword, Result: result}
			if err := s.store.SaveAnalysis(gctx, update); err != nil {
				lgr.Printf("[ERROR] failed to save re-analysis for content %d: %v", item.ID, err)
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}
	_ = g.Wait() // per-item errors are logged, never propagated

	lgr.Printf("[INFO] re-analysis completed, %d of %d items refreshed", refreshed.Load(), len(items))
}
