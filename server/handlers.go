package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/seo"
)

// maskedKey replaces stored API keys in provider responses
const maskedKey = "***"

// analyzeRequest is the payload for single-item analysis. Content may carry
// only an ID, in that case the stored item is analyzed.
type analyzeRequest struct {
	Content domain.ContentItem `json:"content"`
	Keyword string             `json:"keyword"`
	Meta    map[string]string  `json:"meta,omitempty"`
	Persist bool               `json:"persist,omitempty"`
}

// analyzeHandler analyzes one content item against its focus keyword
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	item, err := s.resolveContent(r, &req.Content)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	s.resolveMetaDescription(item, req.Meta)

	result := seo.Analyze(*item, req.Keyword)
	result.AnalyzedAt = time.Now().UTC()

	if req.Persist && item.ID > 0 {
		rec := &domain.AnalysisRecord{ContentID: item.ID, Keyword: req.Keyword, Result: result}
		if err := s.store.SaveAnalysis(ctx, rec); err != nil {
			log.Printf("[ERROR] failed to save analysis for content %d: %v", item.ID, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	renderJSON(w, r, http.StatusOK, result)
}

// bulkAnalyzeItem is one entry of a bulk analysis request
type bulkAnalyzeItem struct {
	Content domain.ContentItem `json:"content"`
	Keyword string             `json:"keyword"`
	Meta    map[string]string  `json:"meta,omitempty"`
}

// bulkAnalyzeRequest is the payload for bulk analysis
type bulkAnalyzeRequest struct {
	Items   []bulkAnalyzeItem `json:"items"`
	Persist bool              `json:"persist,omitempty"`
}

// bulkResult is the per-item outcome of a bulk analysis, results keep the
// request order
type bulkResult struct {
	ContentID int64                `json:"content_id,omitempty"`
	Result    domain.OverallResult `json:"result"`
	Error     string               `json:"error,omitempty"`
}

// bulkAnalyzeHandler analyzes multiple items concurrently, one failed item
// does not affect the rest
func (s *Server) bulkAnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req bulkAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	maxConcurrent, maxBulkItems := s.config.GetAnalyzeLimits()
	if len(req.Items) == 0 {
		renderError(w, r, fmt.Errorf("no items to analyze"), http.StatusBadRequest)
		return
	}
	if len(req.Items) > maxBulkItems {
		renderError(w, r, fmt.Errorf("too many items, limit is %d", maxBulkItems), http.StatusBadRequest)
		return
	}

	results := make([]bulkResult, len(req.Items))
	now := time.Now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i := range req.Items {
		g.Go(func() error {
			entry := &req.Items[i]
			item, err := s.resolveContentCtx(gctx, &entry.Content)
			if err != nil {
				results[i] = bulkResult{ContentID: entry.Content.ID, Error: err.Error()}
				return nil
			}
			s.resolveMetaDescription(item, entry.Meta)

			result := seo.Analyze(*item, entry.Keyword)
			result.AnalyzedAt = now
			results[i] = bulkResult{ContentID: item.ID, Result: result}
			return nil
		})
	}
	_ = g.Wait() // per-item errors are captured in results

	if req.Persist {
		for i := range results {
			if results[i].Error != "" || results[i].ContentID == 0 {
				continue
			}
			rec := &domain.AnalysisRecord{
				ContentID: results[i].ContentID,
				Keyword:   req.Items[i].Keyword,
				Result:    results[i].Result,
			}
			if err := s.store.SaveAnalysis(ctx, rec); err != nil {
				log.Printf("[WARN] failed to save analysis for content %d: %v", results[i].ContentID, err)
				results[i].Error = err.Error()
			}
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"results": results})
}

// getAnalysisHandler returns the stored analysis for a content item
func (s *Server) getAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get analysis: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if rec == nil {
		renderError(w, r, fmt.Errorf("no analysis for content %d", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, rec)
}

// listAnalysesHandler returns stored analyses, worst scores first
func (s *Server) listAnalysesHandler(w http.ResponseWriter, r *http.Request) {
	maxScore := queryInt(r, "max_score", 100)
	limit := queryInt(r, "limit", 50)

	records, err := s.store.ListAnalyses(r.Context(), maxScore, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list analyses: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"analyses": records})
}

// suggestRequest is the payload for suggestion endpoints
type suggestRequest struct {
	ContentID int64                    `json:"content_id,omitempty"`
	Content   domain.ContentItem       `json:"content"`
	Keyword   string                   `json:"keyword"`
	Provider  string                   `json:"provider,omitempty"`
	Options   domain.SuggestionOptions `json:"options"`
	Meta      map[string]string        `json:"meta,omitempty"`
}

// suggestKinds maps URL path segments to suggestion kinds
var suggestKinds = map[string]domain.SuggestionKind{
	"keywords":    domain.SuggestKeywords,
	"title":       domain.SuggestTitle,
	"description": domain.SuggestMetaDescription,
	"content":     domain.SuggestContentPoints,
	"full":        domain.SuggestFull,
}

// suggestHandler generates one AI suggestion of the requested kind
func (s *Server) suggestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, ok := suggestKinds[r.PathValue("kind")]
	if !ok {
		renderError(w, r, fmt.Errorf("unknown suggestion kind %q", r.PathValue("kind")), http.StatusNotFound)
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.ContentID > 0 {
		req.Content.ID = req.ContentID
	}

	item, err := s.resolveContent(r, &req.Content)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	s.resolveMetaDescription(item, req.Meta)

	sreq := domain.SuggestionRequest{
		Kind:     kind,
		Content:  *item,
		Keyword:  req.Keyword,
		Provider: req.Provider,
		Options:  req.Options,
	}
	providers := s.effectiveProviders(ctx)

	var result interface{}
	var provider string
	switch kind {
	case domain.SuggestKeywords:
		res, kerr := s.suggester.GenerateKeywords(ctx, sreq, providers)
		if kerr == nil {
			result, provider = res, res.Provider
		}
		err = kerr
	case domain.SuggestTitle:
		res, kerr := s.suggester.OptimizeTitle(ctx, sreq, providers)
		if kerr == nil {
			result, provider = res, res.Provider
		}
		err = kerr
	case domain.SuggestMetaDescription:
		res, kerr := s.suggester.OptimizeMetaDescription(ctx, sreq, providers)
		if kerr == nil {
			result, provider = res, res.Provider
		}
		err = kerr
	case domain.SuggestContentPoints:
		res, kerr := s.suggester.GenerateContentSuggestions(ctx, sreq, providers)
		if kerr == nil {
			result, provider = res, res.Provider
		}
		err = kerr
	case domain.SuggestFull:
		res, kerr := s.suggester.GenerateFullOptimization(ctx, sreq, providers)
		if kerr == nil {
			result, provider = res, res.Provider
		}
		err = kerr
	}
	if err != nil {
		log.Printf("[WARN] suggestion %s failed: %v", kind, err)
		renderError(w, r, err, statusFromKind(domain.KindOf(err)))
		return
	}

	s.saveSuggestion(ctx, item.ID, kind, req.Keyword, provider, result)
	renderJSON(w, r, http.StatusOK, result)
}

// saveSuggestion appends a history entry, failures are logged but do not fail
// the request
func (s *Server) saveSuggestion(ctx context.Context, contentID int64, kind domain.SuggestionKind, keyword, provider string, result interface{}) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[WARN] failed to marshal suggestion result: %v", err)
		return
	}
	rec := &domain.SuggestionRecord{
		ContentID: contentID,
		Kind:      kind,
		Keyword:   keyword,
		Provider:  provider,
		Result:    data,
	}
	if err := s.store.SaveSuggestion(ctx, rec); err != nil {
		log.Printf("[WARN] failed to save suggestion history: %v", err)
	}
}

// listSuggestionsHandler returns the suggestion history for a content item
func (s *Server) listSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	kind := domain.SuggestionKind(r.URL.Query().Get("kind"))
	limit := queryInt(r, "limit", 20)

	records, err := s.store.ListSuggestions(r.Context(), id, kind, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list suggestions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"suggestions": records})
}

// getProvidersHandler returns the effective provider set with keys masked
func (s *Server) getProvidersHandler(w http.ResponseWriter, r *http.Request) {
	providers := s.effectiveProviders(r.Context())
	renderJSON(w, r, http.StatusOK, maskProviders(providers))
}

// updateProvidersHandler stores a new provider set. Entries carrying the
// masked key keep their previously configured key.
func (s *Server) updateProvidersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var providers []domain.ProviderConfig
	if err := json.NewDecoder(r.Body).Decode(&providers); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	seen := map[string]bool{}
	for _, p := range providers {
		if p.Name == "" {
			renderError(w, r, fmt.Errorf("provider name is required"), http.StatusBadRequest)
			return
		}
		if seen[p.Name] {
			renderError(w, r, fmt.Errorf("duplicate provider name %q", p.Name), http.StatusBadRequest)
			return
		}
		seen[p.Name] = true
	}

	// restore keys hidden by a previous GET
	current := s.effectiveProviders(ctx)
	keys := map[string]string{}
	for _, p := range current {
		keys[p.Name] = p.APIKey
	}
	for i := range providers {
		if providers[i].APIKey == maskedKey {
			providers[i].APIKey = keys[providers[i].Name]
		}
	}

	if err := s.store.SaveProviders(ctx, providers); err != nil {
		log.Printf("[ERROR] failed to save providers: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, maskProviders(providers))
}

// extractRequest is the payload for page extraction
type extractRequest struct {
	URL     string `json:"url"`
	Persist bool   `json:"persist,omitempty"`
}

// extractHandler builds a content item from a live page
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.extractor == nil {
		renderError(w, r, fmt.Errorf("extraction is disabled"), http.StatusServiceUnavailable)
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	item, err := s.extractor.Extract(ctx, req.URL)
	if err != nil {
		log.Printf("[WARN] extraction failed for %s: %v", req.URL, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	if req.Persist {
		if err := s.store.CreateContent(ctx, item); err != nil {
			log.Printf("[ERROR] failed to save extracted content: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	renderJSON(w, r, http.StatusOK, item)
}

// createContentHandler stores a new content item
func (s *Server) createContentHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if item.Title == "" && item.Body == "" {
		renderError(w, r, fmt.Errorf("content must have a title or body"), http.StatusBadRequest)
		return
	}

	item.ID = 0
	if err := s.store.CreateContent(r.Context(), &item); err != nil {
		log.Printf("[ERROR] failed to create content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, item)
}

// getContentHandler returns a stored content item
func (s *Server) getContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.store.GetContent(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if item == nil {
		renderError(w, r, fmt.Errorf("content %d not found", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, item)
}

// listContentsHandler returns stored content items, newest first
func (s *Server) listContentsHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	items, err := s.store.ListContents(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list contents: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"contents": items})
}

// updateContentHandler replaces a stored content item
func (s *Server) updateContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var item domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := s.store.UpdateContent(r.Context(), &item); err != nil {
		log.Printf("[WARN] failed to update content %d: %v", id, err)
		renderError(w, r, err, http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, item)
}

// deleteContentHandler removes a content item and its stored results
func (s *Server) deleteContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteContent(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete content %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveContent loads the stored item when the request carries only an ID
func (s *Server) resolveContent(r *http.Request, content *domain.ContentItem) (*domain.ContentItem, error) {
	return s.resolveContentCtx(r.Context(), content)
}

func (s *Server) resolveContentCtx(ctx context.Context, content *domain.ContentItem) (*domain.ContentItem, error) {
	if content.ID == 0 || content.Title != "" || content.Body != "" {
		return content, nil
	}
	stored, err := s.store.GetContent(ctx, content.ID)
	if err != nil {
		return nil, fmt.Errorf("load content %d: %w", content.ID, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("content %d not found", content.ID)
	}
	return stored, nil
}

// effectiveProviders returns stored provider overrides when present,
// otherwise the configured set. Re-read on every request so runtime changes
// apply without a restart.
func (s *Server) effectiveProviders(ctx context.Context) []domain.ProviderConfig {
	stored, err := s.store.GetProviders(ctx)
	if err != nil {
		log.Printf("[WARN] failed to load stored providers, using config: %v", err)
		return s.config.GetProviders()
	}
	if len(stored) > 0 {
		return stored
	}
	return s.config.GetProviders()
}

// maskProviders hides API keys in provider responses
func maskProviders(providers []domain.ProviderConfig) []domain.ProviderConfig {
	masked := make([]domain.ProviderConfig, len(providers))
	copy(masked, providers)
	for i := range masked {
		if masked[i].APIKey != "" {
			masked[i].APIKey = maskedKey
		}
	}
	return masked
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// queryInt parses an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
