package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/onep_client/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	status DeviceStatusProvider,
	usage UsageService,
	uploads UploadsRepository,
	outcomes OutcomesRepository,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(status, usage, uploads, outcomes),
		},
	}
}

func NewRouter(
	status DeviceStatusProvider,
	usage UsageService,
	uploads UploadsRepository,
	outcomes OutcomesRepository,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	device := NewDeviceHandler(status)
	usageHandler := NewUsageHandler(usage)
	uploadsHandler := NewUploadsHandler(uploads, outcomes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/device", device.GetDevice)

		r.Route("/usage", func(r chi.Router) {
			r.Get("/report", usageHandler.GetReport)
			r.Get("/throttled", usageHandler.GetThrottled)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Get("/", uploadsHandler.GetUploads)
			r.Get("/{name}/outcomes", uploadsHandler.GetOutcomes)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
