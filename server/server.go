// Package server exposes thin HTTP trigger endpoints over the pipelines;
// request validation only, no business logic.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"newsdigest/pkg/domain"
	"newsdigest/pkg/pipeline"
)

//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/digest_publisher.go -pkg mocks -skip-ensure -fmt goimports . DigestPublisher
//go:generate moq -out mocks/digest_reader.go -pkg mocks -skip-ensure -fmt goimports . DigestReader

// Ingester runs one ingestion pass on demand
type Ingester interface {
	Run(ctx context.Context, dryRun bool) (pipeline.IngestResult, error)
}

// DigestPublisher runs one digest publishing pass on demand
type DigestPublisher interface {
	Run(ctx context.Context) (pipeline.PublishResult, error)
}

// DigestReader provides read-back access to stored digests
type DigestReader interface {
	GetDigest(ctx context.Context, id int64) (*domain.Digest, error)
	GetDigests(ctx context.Context, limit int) ([]domain.Digest, error)
}

// Config holds server configuration
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	config    Config
	ingester  Ingester
	publisher DigestPublisher
	digests   DigestReader

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, ingester Ingester, publisher DigestPublisher, digests DigestReader) *Server {
	s := &Server{
		config:    cfg,
		ingester:  ingester,
		publisher: publisher,
		digests:   digests,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdigest", "newsdigest", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(10))
	s.router.Use(rest.SizeLimit(64 * 1024)) // trigger requests carry no payload
}

// setupRoutes wires the trigger and read-back endpoints
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.HandleFunc("POST /ingest", s.ingestHandler)
		api.HandleFunc("POST /publish", s.publishHandler)
		api.HandleFunc("GET /digests", s.digestsHandler)
		api.HandleFunc("GET /digests/{id}", s.digestHandler)
	})
}

// ingestHandler runs one ingestion pass, POST /api/v1/ingest?dry_run=true
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	dryRun := r.URL.Query().Get("dry_run") == "true"

	result, err := s.ingester.Run(r.Context(), dryRun)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusInternalServerError, err, "ingest failed")
		return
	}
	rest.RenderJSON(w, result)
}

// publishHandler runs one digest publishing pass, POST /api/v1/publish
func (s *Server) publishHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.publisher.Run(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusInternalServerError, err, "digest publishing failed")
		return
	}
	rest.RenderJSON(w, result)
}

// digestHandler returns one digest by id, GET /api/v1/digests/{id}
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest,
			fmt.Errorf("invalid digest id %q", r.PathValue("id")), "bad request")
		return
	}

	d, err := s.digests.GetDigest(r.Context(), id)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusNotFound, err, "digest not found")
		return
	}
	rest.RenderJSON(w, toDigestResponse(d))
}

// digestsHandler returns recent digests, GET /api/v1/digests?limit=N
func (s *Server) digestsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest,
				fmt.Errorf("invalid limit %q", v), "bad request")
			return
		}
		limit = parsed
	}

	digests, err := s.digests.GetDigests(r.Context(), limit)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusInternalServerError, err, "failed to get digests")
		return
	}

	resp := make([]digestResponse, len(digests))
	for i := range digests {
		resp[i] = toDigestResponse(&digests[i])
	}
	rest.RenderJSON(w, resp)
}

// digestResponse is the JSON shape of a digest
type digestResponse struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	Text          string     `json:"text"`
	Published     bool       `json:"is_published"`
	SourceItemIDs []int64    `json:"source_item_ids"`
	LLMModel      string     `json:"llm_model,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ExternalID    string     `json:"external_id,omitempty"`
}

func toDigestResponse(d *domain.Digest) digestResponse {
	return digestResponse{
		ID:            d.ID,
		CreatedAt:     d.CreatedAt,
		Text:          d.Text,
		Published:     d.Published,
		SourceItemIDs: d.SourceItemIDs,
		LLMModel:      d.LLMModel,
		PublishedAt:   d.PublishedAt,
		ExternalID:    d.ExternalID,
	}
}
