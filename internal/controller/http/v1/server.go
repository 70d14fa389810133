package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/doc_generator/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	Jobs  JobService
	Store ArtifactStore
	Rows  RowStatusReader
	Hub   Subscriber
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, deps),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	documents := NewDocumentsHandler(log, deps.Jobs, deps.Store, deps.Rows, cfg.MaxUploadBytes)
	events := NewEventsHandler(log, deps.Jobs, deps.Hub)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/documents", documents.GenerateDocuments)
		r.Get("/documents", documents.ListDocuments)
		r.Get("/document-status/{id}", documents.DocumentStatus)
		r.Get("/document-status/{id}/rows", documents.RowStatuses)
		r.Post("/cancel-generation/{id}", documents.CancelGeneration)
		r.Get("/error-report/{filename}", documents.ErrorReport)
		r.Get("/summary-report/{filename}", documents.SummaryReport)
		r.Get("/pdf/{name}", documents.Document)
		r.Get("/email-template/{pdfName}", documents.EmailTemplate)
		r.Get("/jobs/{id}/events", events.JobEvents)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
