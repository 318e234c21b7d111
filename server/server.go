// Package server exposes the analysis and suggestion engine over a REST API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/postwise/seoscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/suggester.go -pkg mocks -skip-ensure -fmt goimports . Suggester
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	suggester Suggester
	extractor Extractor
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store is the persistence interface for server operations
type Store interface {
	CreateContent(ctx context.Context, item *domain.ContentItem) error
	UpdateContent(ctx context.Context, item *domain.ContentItem) error
	GetContent(ctx context.Context, id int64) (*domain.ContentItem, error)
	ListContents(ctx context.Context, limit int) ([]*domain.ContentItem, error)
	DeleteContent(ctx context.Context, id int64) error

	SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error
	GetAnalysis(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error)
	ListAnalyses(ctx context.Context, maxScore, limit int) ([]*domain.AnalysisRecord, error)

	SaveSuggestion(ctx context.Context, rec *domain.SuggestionRecord) error
	ListSuggestions(ctx context.Context, contentID int64, kind domain.SuggestionKind, limit int) ([]*domain.SuggestionRecord, error)

	GetProviders(ctx context.Context) ([]domain.ProviderConfig, error)
	SaveProviders(ctx context.Context, providers []domain.ProviderConfig) error
}

// Suggester generates AI suggestions for content items
type Suggester interface {
	GenerateKeywords(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.KeywordsResult, error)
	OptimizeTitle(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.TitleResult, error)
	OptimizeMetaDescription(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.MetaDescriptionResult, error)
	GenerateContentSuggestions(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.ContentPointsResult, error)
	GenerateFullOptimization(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.FullResult, error)
}

// Extractor builds content items from live pages
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (*domain.ContentItem, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetProviders() []domain.ProviderConfig
	GetMetaSources() []string
	GetAnalyzeLimits() (maxConcurrent, maxBulkItems int)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, suggester Suggester, extractor Extractor, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		suggester: suggester,
		extractor: extractor,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("seoscope", "postwise", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /analyze", s.analyzeHandler)
		r.HandleFunc("POST /analyze/bulk", s.bulkAnalyzeHandler)
		r.HandleFunc("GET /analysis/{id}", s.getAnalysisHandler)
		r.HandleFunc("GET /analyses", s.listAnalysesHandler)

		r.HandleFunc("POST /suggest/{kind}", s.suggestHandler)
		r.HandleFunc("GET /suggestions/{id}", s.listSuggestionsHandler)

		r.HandleFunc("GET /providers", s.getProvidersHandler)
		r.HandleFunc("PUT /providers", s.updateProvidersHandler)

		r.HandleFunc("POST /extract", s.extractHandler)

		r.HandleFunc("POST /contents", s.createContentHandler)
		r.HandleFunc("GET /contents", s.listContentsHandler)
		r.HandleFunc("GET /contents/{id}", s.getContentHandler)
		r.HandleFunc("PUT /contents/{id}", s.updateContentHandler)
		r.HandleFunc("DELETE /contents/{id}", s.deleteContentHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// statusFromKind maps suggestion error kinds to HTTP status codes
func statusFromKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	case domain.ErrProviderNotConfigured:
		return http.StatusServiceUnavailable
	case domain.ErrProviderTimeout:
		return http.StatusGatewayTimeout
	case domain.ErrProviderRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
