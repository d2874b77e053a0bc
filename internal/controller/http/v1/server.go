package v1

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/student_uploader/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Handlers struct {
	Upload    *UploadHandler
	Students  *StudentsHandler
	Analytics *AnalyticsHandler
	Uploads   *UploadsHandler
}

func NewServer(cfg config.HTTP, responder *Responder, h Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(responder, h),
		},
	}
}

func NewRouter(responder *Responder, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", h.Upload.Upload)

		r.Get("/students", h.Students.GetStudents)
		r.Get("/students/export", h.Students.ExportStudents)

		r.Get("/analytics/subject-average", h.Analytics.SubjectAverage)

		r.Get("/uploads", h.Uploads.GetUploads)
		r.Get("/uploads/{id}/report", h.Uploads.GetUploadReport)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.Error(w, r, &routeNotFoundError{path: r.URL.Path})
	})

	return r
}

type routeNotFoundError struct {
	path string
}

func (e *routeNotFoundError) Error() string {
	return fmt.Sprintf("Route Not Found – %s", e.path)
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
