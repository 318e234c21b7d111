package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postwise/seoscope/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, repos.Close()) })
	return repos
}

func sampleContent() *domain.ContentItem {
	return &domain.ContentItem{
		Title:           "SEO Basics for Small Shops",
		Body:            "<p>Body text about seo fundamentals.</p>",
		Slug:            "seo-basics",
		MetaDescription: "A short guide to the fundamentals.",
	}
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestRepos(t)
	require.NotNil(t, repos.Content)
	require.NotNil(t, repos.Analysis)
	require.NotNil(t, repos.Suggestion)
	require.NotNil(t, repos.Setting)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestContentRepository_CRUD(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	item := sampleContent()
	require.NoError(t, repos.Content.CreateContent(ctx, item))
	assert.Positive(t, item.ID)

	t.Run("get", func(t *testing.T) {
		got, err := repos.Content.GetContent(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, item.Title, got.Title)
		assert.Equal(t, item.Slug, got.Slug)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		got, err := repos.Content.GetContent(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update", func(t *testing.T) {
		item.Title = "SEO Basics, Revised"
		require.NoError(t, repos.Content.UpdateContent(ctx, item))

		got, err := repos.Content.GetContent(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "SEO Basics, Revised", got.Title)
	})

	t.Run("update missing fails", func(t *testing.T) {
		missing := sampleContent()
		missing.ID = 9999
		err := repos.Content.UpdateContent(ctx, missing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("list", func(t *testing.T) {
		second := sampleContent()
		second.Slug = "seo-basics-2"
		require.NoError(t, repos.Content.CreateContent(ctx, second))

		items, err := repos.Content.ListContents(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("delete cascades", func(t *testing.T) {
		victim := sampleContent()
		require.NoError(t, repos.Content.CreateContent(ctx, victim))
		require.NoError(t, repos.Analysis.SaveAnalysis(ctx, &domain.AnalysisRecord{
			ContentID: victim.ID,
			Keyword:   "seo",
			Result:    domain.OverallResult{Score: 75, Status: domain.StatusOK, AnalyzedAt: time.Now()},
		}))

		require.NoError(t, repos.Content.DeleteContent(ctx, victim.ID))

		got, err := repos.Content.GetContent(ctx, victim.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		rec, err := repos.Analysis.GetAnalysis(ctx, victim.ID)
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestAnalysisRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	item := sampleContent()
	require.NoError(t, repos.Content.CreateContent(ctx, item))

	rec := &domain.AnalysisRecord{
		ContentID: item.ID,
		Keyword:   "seo",
		Result: domain.OverallResult{
			Score:  62,
			Status: domain.StatusOK,
			Fields: map[domain.FieldName]domain.FieldResult{
				domain.FieldTitle: {Score: 75, Issues: []string{"title is shorter than 30 characters"}},
				domain.FieldBody:  {Score: 50, Issues: []string{"content is shorter than 300 words"}},
			},
			AnalyzedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
	require.NoError(t, repos.Analysis.SaveAnalysis(ctx, rec))

	t.Run("round trip", func(t *testing.T) {
		got, err := repos.Analysis.GetAnalysis(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 62, got.Result.Score)
		assert.Equal(t, domain.StatusOK, got.Result.Status)
		assert.Equal(t, "seo", got.Keyword)
		require.Contains(t, got.Result.Fields, domain.FieldTitle)
		assert.Equal(t, 75, got.Result.Fields[domain.FieldTitle].Score)
		assert.Equal(t, []string{"title is shorter than 30 characters"}, got.Result.Fields[domain.FieldTitle].Issues)
	})

	t.Run("upsert replaces previous analysis", func(t *testing.T) {
		rec.Result.Score = 88
		rec.Result.Status = domain.StatusGood
		require.NoError(t, repos.Analysis.SaveAnalysis(ctx, rec))

		got, err := repos.Analysis.GetAnalysis(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 88, got.Result.Score)

		records, err := repos.Analysis.ListAnalyses(ctx, 100, 10)
		require.NoError(t, err)
		assert.Len(t, records, 1, "one row per content item")
	})

	t.Run("list worst first with ceiling", func(t *testing.T) {
		second := sampleContent()
		second.Slug = "another-page"
		require.NoError(t, repos.Content.CreateContent(ctx, second))
		require.NoError(t, repos.Analysis.SaveAnalysis(ctx, &domain.AnalysisRecord{
			ContentID: second.ID,
			Keyword:   "shops",
			Result:    domain.OverallResult{Score: 23, Status: domain.StatusPoor, AnalyzedAt: time.Now()},
		}))

		records, err := repos.Analysis.ListAnalyses(ctx, 50, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, second.ID, records[0].ContentID)

		all, err := repos.Analysis.ListAnalyses(ctx, 100, 10)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, 23, all[0].Result.Score, "worst first")
	})

	t.Run("missing analysis returns nil", func(t *testing.T) {
		got, err := repos.Analysis.GetAnalysis(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSuggestionRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	item := sampleContent()
	require.NoError(t, repos.Content.CreateContent(ctx, item))

	titleResult, err := json.Marshal(domain.TitleResult{Title: "Better SEO Title", Provider: "openai"})
	require.NoError(t, err)

	rec := &domain.SuggestionRecord{
		ContentID: item.ID,
		Kind:      domain.SuggestTitle,
		Keyword:   "seo",
		Provider:  "openai",
		Result:    titleResult,
	}
	require.NoError(t, repos.Suggestion.SaveSuggestion(ctx, rec))
	assert.Positive(t, rec.ID)

	keywordsResult, err := json.Marshal(domain.KeywordsResult{Keywords: []string{"seo", "shops"}, Provider: "gemini"})
	require.NoError(t, err)
	require.NoError(t, repos.Suggestion.SaveSuggestion(ctx, &domain.SuggestionRecord{
		ContentID: item.ID,
		Kind:      domain.SuggestKeywords,
		Provider:  "gemini",
		Result:    keywordsResult,
	}))

	t.Run("list all kinds", func(t *testing.T) {
		records, err := repos.Suggestion.ListSuggestions(ctx, item.ID, "", 10)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filter by kind", func(t *testing.T) {
		records, err := repos.Suggestion.ListSuggestions(ctx, item.ID, domain.SuggestTitle, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.SuggestTitle, records[0].Kind)

		var parsed domain.TitleResult
		require.NoError(t, json.Unmarshal(records[0].Result, &parsed))
		assert.Equal(t, "Better SEO Title", parsed.Title)
	})

	t.Run("empty result stored as object", func(t *testing.T) {
		empty := &domain.SuggestionRecord{ContentID: item.ID, Kind: domain.SuggestFull}
		require.NoError(t, repos.Suggestion.SaveSuggestion(ctx, empty))

		records, err := repos.Suggestion.ListSuggestions(ctx, item.ID, domain.SuggestFull, 1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.JSONEq(t, "{}", string(records[0].Result))
	})
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("get missing returns empty", func(t *testing.T) {
		value, err := repos.Setting.GetSetting(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, "default_tone", "friendly"))

		value, err := repos.Setting.GetSetting(ctx, "default_tone")
		require.NoError(t, err)
		assert.Equal(t, "friendly", value)

		// overwrite
		require.NoError(t, repos.Setting.SetSetting(ctx, "default_tone", "formal"))
		value, err = repos.Setting.GetSetting(ctx, "default_tone")
		require.NoError(t, err)
		assert.Equal(t, "formal", value)
	})

	t.Run("provider overrides round trip", func(t *testing.T) {
		stored, err := repos.Setting.GetProviders(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)

		providers := []domain.ProviderConfig{
			{Name: "openai", Type: domain.ProviderOpenAI, Model: "gpt-4o-mini", Enabled: true, Priority: 1},
			{Name: "gemini", Type: domain.ProviderGemini, Model: "gemini-1.5-flash", Enabled: false, Priority: 2},
		}
		require.NoError(t, repos.Setting.SaveProviders(ctx, providers))

		stored, err = repos.Setting.GetProviders(ctx)
		require.NoError(t, err)
		assert.Equal(t, providers, stored)
	})
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(errors.New("some other error")))
	assert.True(t, isLockError(errors.New("database is locked")))
	assert.True(t, isLockError(errors.New("SQLITE_BUSY: database busy")))
	assert.True(t, isLockError(errors.New("database table is locked")))
}
