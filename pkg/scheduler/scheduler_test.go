package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postwise/seoscope/pkg/domain"
)

// storeMock implements Store with function fields
type storeMock struct {
	ListContentsFunc func(ctx context.Context, limit int) ([]*domain.ContentItem, error)
	GetAnalysisFunc  func(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error)
	SaveAnalysisFunc func(ctx context.Context, rec *domain.AnalysisRecord) error

	mu    sync.Mutex
	saved []*domain.AnalysisRecord
}

func (m *storeMock) ListContents(ctx context.Context, limit int) ([]*domain.ContentItem, error) {
	return m.ListContentsFunc(ctx, limit)
}

func (m *storeMock) GetAnalysis(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error) {
	return m.GetAnalysisFunc(ctx, contentID)
}

func (m *storeMock) SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error {
	if m.SaveAnalysisFunc != nil {
		if err := m.SaveAnalysisFunc(ctx, rec); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.saved = append(m.saved, rec)
	m.mu.Unlock()
	return nil
}

func (m *storeMock) savedRecords() []*domain.AnalysisRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.AnalysisRecord{}, m.saved...)
}

func TestScheduler_ReanalyzeAll(t *testing.T) {
	items := []*domain.ContentItem{
		{ID: 1, Title: "Analyzed Before", Body: "<p>text</p>", Slug: "analyzed"},
		{ID: 2, Title: "Never Analyzed", Body: "<p>text</p>", Slug: "never"},
	}
	store := &storeMock{
		ListContentsFunc: func(_ context.Context, limit int) ([]*domain.ContentItem, error) {
			assert.Equal(t, 100, limit)
			return items, nil
		},
		GetAnalysisFunc: func(_ context.Context, contentID int64) (*domain.AnalysisRecord, error) {
			if contentID == 1 {
				return &domain.AnalysisRecord{ContentID: 1, Keyword: "analyzed"}, nil
			}
			return nil, nil
		},
	}

	s := New(store, Config{})
	s.reanalyzeAll(context.Background())

	saved := store.savedRecords()
	require.Len(t, saved, 1, "only the previously analyzed item is refreshed")
	assert.Equal(t, int64(1), saved[0].ContentID)
	assert.Equal(t, "analyzed", saved[0].Keyword)
	assert.False(t, saved[0].Result.AnalyzedAt.IsZero())
	assert.Len(t, saved[0].Result.Fields, 4)
}

func TestScheduler_ReanalyzeAll_SaveFailureIsolated(t *testing.T) {
	items := []*domain.ContentItem{
		{ID: 1, Title: "First", Body: "<p>a</p>", Slug: "first"},
		{ID: 2, Title: "Second", Body: "<p>b</p>", Slug: "second"},
	}
	store := &storeMock{
		ListContentsFunc: func(_ context.Context, _ int) ([]*domain.ContentItem, error) {
			return items, nil
		},
		GetAnalysisFunc: func(_ context.Context, contentID int64) (*domain.AnalysisRecord, error) {
			return &domain.AnalysisRecord{ContentID: contentID, Keyword: "kw"}, nil
		},
		SaveAnalysisFunc: func(_ context.Context, rec *domain.AnalysisRecord) error {
			if rec.ContentID == 1 {
				return fmt.Errorf("disk full")
			}
			return nil
		},
	}

	s := New(store, Config{MaxWorkers: 1})
	s.reanalyzeAll(context.Background())

	saved := store.savedRecords()
	require.Len(t, saved, 1)
	assert.Equal(t, int64(2), saved[0].ContentID)
}

func TestScheduler_ReanalyzeAll_ListFailure(t *testing.T) {
	store := &storeMock{
		ListContentsFunc: func(_ context.Context, _ int) ([]*domain.ContentItem, error) {
			return nil, fmt.Errorf("db closed")
		},
	}

	s := New(store, Config{})
	s.reanalyzeAll(context.Background()) // logs and returns, no panic

	assert.Empty(t, store.savedRecords())
}

func TestScheduler_StartStop(t *testing.T) {
	var sweeps atomic.Int64
	store := &storeMock{
		ListContentsFunc: func(_ context.Context, _ int) ([]*domain.ContentItem, error) {
			sweeps.Add(1)
			return nil, nil
		},
	}

	s := New(store, Config{Interval: 20 * time.Millisecond})
	s.Start(context.Background())

	require.Eventually(t, func() bool { return sweeps.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	s.Stop()
	after := sweeps.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, sweeps.Load(), "no sweeps after stop")
}

func TestNew_Defaults(t *testing.T) {
	s := New(&storeMock{}, Config{})
	assert.Equal(t, time.Hour, s.interval)
	assert.Equal(t, 100, s.batchSize)
	assert.Equal(t, 4, s.maxWorkers)
}
