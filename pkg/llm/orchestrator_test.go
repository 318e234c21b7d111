package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postwise/seoscope/pkg/domain"
)

// completionServer is an OpenAI-compatible test endpoint returning fixed
// content and counting calls
func completionServer(t *testing.T, content string, status int, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testProvider(name string, endpoint string, enabled bool, priority int) domain.ProviderConfig {
	return domain.ProviderConfig{
		Name:     name,
		Type:     domain.ProviderOpenAI,
		Endpoint: endpoint + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
		Enabled:  enabled,
		Priority: priority,
	}
}

func testRequest(kind domain.SuggestionKind) domain.SuggestionRequest {
	return domain.SuggestionRequest{
		Kind:    kind,
		Keyword: "seo",
		Content: domain.ContentItem{
			ID:    1,
			Title: "Old Title About Something",
			Body:  "<p>some body text to work with</p>",
			Slug:  "old-title",
		},
	}
}

func TestOrchestrator_OptimizeTitle(t *testing.T) {
	var calls int32
	srv := completionServer(t, "\"Improved SEO Title That Works\"\n", http.StatusOK, &calls)
	defer srv.Close()

	orch := NewOrchestrator(5*time.Second, 1)
	res, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle),
		[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
	require.NoError(t, err)

	assert.Equal(t, "Improved SEO Title That Works", res.Title, "quotes and whitespace stripped")
	assert.Equal(t, "openai", res.Provider)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestOrchestrator_GenerateKeywords(t *testing.T) {
	t.Run("numbered response parsed and capped", func(t *testing.T) {
		var calls int32
		srv := completionServer(t, "1. seo basics\n2. seo guide\n3. on-page seo\n4. seo tips\n5. seo 2025\n6. extra", http.StatusOK, &calls)
		defer srv.Close()

		orch := NewOrchestrator(5*time.Second, 1)
		res, err := orch.GenerateKeywords(context.Background(), testRequest(domain.SuggestKeywords),
			[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
		require.NoError(t, err)

		assert.Len(t, res.Keywords, 5)
		assert.Equal(t, "seo basics", res.Keywords[0])
	})

	t.Run("empty response is a parse failure", func(t *testing.T) {
		var calls int32
		srv := completionServer(t, "   \n\n", http.StatusOK, &calls)
		defer srv.Close()

		orch := NewOrchestrator(5*time.Second, 1)
		_, err := orch.GenerateKeywords(context.Background(), testRequest(domain.SuggestKeywords),
			[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
		require.Error(t, err)
		assert.Equal(t, domain.ErrParseEmpty, domain.KindOf(err))
	})
}

func TestOrchestrator_Fallback(t *testing.T) {
	var disabledCalls, failingCalls, goodCalls int32

	disabled := completionServer(t, "never used", http.StatusOK, &disabledCalls)
	defer disabled.Close()
	failing := completionServer(t, "", http.StatusInternalServerError, &failingCalls)
	defer failing.Close()
	good := completionServer(t, "Fallback Title Wins", http.StatusOK, &goodCalls)
	defer good.Close()

	providers := []domain.ProviderConfig{
		testProvider("disabled", disabled.URL, false, 1),
		testProvider("failing", failing.URL, true, 2),
		testProvider("good", good.URL, true, 3),
	}

	orch := NewOrchestrator(5*time.Second, 1)
	res, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle), providers)
	require.NoError(t, err)

	assert.Equal(t, "Fallback Title Wins", res.Title)
	assert.Equal(t, "good", res.Provider)
	assert.Zero(t, atomic.LoadInt32(&disabledCalls), "disabled provider must not be consulted")
	assert.Equal(t, int32(1), atomic.LoadInt32(&failingCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&goodCalls))
}

func TestOrchestrator_PriorityOrder(t *testing.T) {
	var firstCalls, secondCalls int32
	first := completionServer(t, "First Priority Title", http.StatusOK, &firstCalls)
	defer first.Close()
	second := completionServer(t, "Second Priority Title", http.StatusOK, &secondCalls)
	defer second.Close()

	// listed out of order, priority decides
	providers := []domain.ProviderConfig{
		testProvider("second", second.URL, true, 20),
		testProvider("first", first.URL, true, 10),
	}

	orch := NewOrchestrator(5*time.Second, 1)
	res, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle), providers)
	require.NoError(t, err)

	assert.Equal(t, "First Priority Title", res.Title)
	assert.Zero(t, atomic.LoadInt32(&secondCalls), "lower priority provider consulted only on failure")
}

func TestOrchestrator_ExplicitProvider(t *testing.T) {
	t.Run("explicit failure has no fallback", func(t *testing.T) {
		var failingCalls, goodCalls int32
		failing := completionServer(t, "", http.StatusInternalServerError, &failingCalls)
		defer failing.Close()
		good := completionServer(t, "would succeed", http.StatusOK, &goodCalls)
		defer good.Close()

		providers := []domain.ProviderConfig{
			testProvider("failing", failing.URL, true, 1),
			testProvider("good", good.URL, true, 2),
		}

		req := testRequest(domain.SuggestTitle)
		req.Provider = "failing"

		orch := NewOrchestrator(5*time.Second, 1)
		_, err := orch.OptimizeTitle(context.Background(), req, providers)
		require.Error(t, err)
		assert.Equal(t, domain.ErrProviderServer, domain.KindOf(err))
		assert.Zero(t, atomic.LoadInt32(&goodCalls))
	})

	t.Run("unknown explicit provider", func(t *testing.T) {
		orch := NewOrchestrator(5*time.Second, 1)
		req := testRequest(domain.SuggestTitle)
		req.Provider = "nonexistent"

		_, err := orch.OptimizeTitle(context.Background(), req, []domain.ProviderConfig{})
		require.Error(t, err)
		assert.Equal(t, domain.ErrProviderNotConfigured, domain.KindOf(err))
	})
}

func TestOrchestrator_AllProvidersFail(t *testing.T) {
	var calls int32
	failing := completionServer(t, "", http.StatusTooManyRequests, &calls)
	defer failing.Close()

	providers := []domain.ProviderConfig{
		testProvider("a", failing.URL, true, 1),
		testProvider("b", failing.URL, true, 2),
	}

	orch := NewOrchestrator(5*time.Second, 1)
	_, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle), providers)
	require.Error(t, err)
	assert.Equal(t, domain.ErrProviderRateLimited, domain.KindOf(err))
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestOrchestrator_NoProvidersConfigured(t *testing.T) {
	orch := NewOrchestrator(5*time.Second, 1)

	providers := []domain.ProviderConfig{
		{Name: "no-key", Type: domain.ProviderOpenAI, Enabled: true}, // missing key
		testProvider("disabled", "http://localhost:1", false, 1),
	}

	_, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle), providers)
	require.Error(t, err)
	assert.Equal(t, domain.ErrProviderNotConfigured, domain.KindOf(err))
}

func TestOrchestrator_TransientRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "Recovered Title"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	orch := NewOrchestrator(5*time.Second, 2)
	res, err := orch.OptimizeTitle(context.Background(), testRequest(domain.SuggestTitle),
		[]domain.ProviderConfig{testProvider("flaky", srv.URL, true, 1)})
	require.NoError(t, err)

	assert.Equal(t, "Recovered Title", res.Title)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestOrchestrator_GenerateFullOptimization(t *testing.T) {
	t.Run("sectioned response", func(t *testing.T) {
		var calls int32
		srv := completionServer(t,
			"TITEL: Complete SEO Guide for Beginners\n\nMETA-BESCHREIBUNG: Learn SEO from scratch.\n\nINHALT-OPTIMIERUNGEN:\n1. Add internal links\n2. Expand the intro",
			http.StatusOK, &calls)
		defer srv.Close()

		orch := NewOrchestrator(5*time.Second, 1)
		res, err := orch.GenerateFullOptimization(context.Background(), testRequest(domain.SuggestFull),
			[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
		require.NoError(t, err)

		assert.Equal(t, "Complete SEO Guide for Beginners", res.Title)
		assert.Equal(t, "Learn SEO from scratch.", res.Description)
		assert.Equal(t, []string{"Add internal links", "Expand the intro"}, res.Points)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "combined request must be a single call")
	})

	t.Run("unstructured response is not an error", func(t *testing.T) {
		var calls int32
		srv := completionServer(t, "sorry, I cannot help with that", http.StatusOK, &calls)
		defer srv.Close()

		orch := NewOrchestrator(5*time.Second, 1)
		res, err := orch.GenerateFullOptimization(context.Background(), testRequest(domain.SuggestFull),
			[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
		require.NoError(t, err)

		assert.Empty(t, res.Title)
		assert.Empty(t, res.Description)
		assert.Empty(t, res.Points)
	})
}

func TestOrchestrator_GenerateContentSuggestions(t *testing.T) {
	var calls int32
	srv := completionServer(t, "1. Add a FAQ section\n2. Use the keyword in the intro\n3. Add alt text", http.StatusOK, &calls)
	defer srv.Close()

	req := testRequest(domain.SuggestContentPoints)
	req.Options.MaxItems = 2

	orch := NewOrchestrator(5*time.Second, 1)
	res, err := orch.GenerateContentSuggestions(context.Background(), req,
		[]domain.ProviderConfig{testProvider("openai", srv.URL, true, 1)})
	require.NoError(t, err)

	assert.Equal(t, []string{"Add a FAQ section", "Use the keyword in the intro"}, res.Points)
}

func TestOrchestrator_InvalidInput(t *testing.T) {
	orch := NewOrchestrator(5*time.Second, 1)
	providers := []domain.ProviderConfig{testProvider("openai", "http://localhost:1", true, 1)}

	t.Run("empty content", func(t *testing.T) {
		req := domain.SuggestionRequest{Keyword: "seo"}
		_, err := orch.OptimizeTitle(context.Background(), req, providers)
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidInput, domain.KindOf(err))
	})

	t.Run("missing keyword for rewrite", func(t *testing.T) {
		req := testRequest(domain.SuggestTitle)
		req.Keyword = ""
		_, err := orch.OptimizeTitle(context.Background(), req, providers)
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidInput, domain.KindOf(err))
	})
}
