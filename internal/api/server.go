// Package api exposes the geometry pipeline and design storage over HTTP.
//
// All endpoints speak JSON except the render endpoint, which streams the
// artifact bytes. Errors carry a machine-readable code in the body:
//
//	{"error": {"code": "DESIGN_NOT_FOUND", "message": "design x not found"}}
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rickerduniya/Sayanho-sub002/pkg/buildinfo"
	"github.com/rickerduniya/Sayanho-sub002/pkg/pipeline"
	"github.com/rickerduniya/Sayanho-sub002/pkg/store"
)

// Server holds the API dependencies and the router.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New assembles the API server. The runner must be non-nil; pass a runner
// with a NullCache to disable caching.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{store: st, runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/arrange", s.handleArrange)
		r.Post("/stitch", s.handleStitch)
		r.Post("/rooms", s.handleRooms)

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", s.handleListDesigns)
			r.Post("/", s.handleCreateDesign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDesign)
				r.Put("/", s.handleUpdateDesign)
				r.Delete("/", s.handleDeleteDesign)
				r.Post("/pipeline", s.handleDesignPipeline)
				r.Get("/render", s.handleRenderDesign)
			})
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
