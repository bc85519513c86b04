package http

import (
	"log/slog"
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/handler/http/middleware"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	// UploadsDir is served under /uploads when pictures are stored on local disk.
	UploadsDir string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	paymentHandler PaymentHandler,
	wageHandler WageHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json", "multipart/form-data"))

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/verify", authHandler.Verify)
				r.Post("/logout", authHandler.Logout)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workerHandler.Get)
					r.Put("/", workerHandler.Update)
					r.Delete("/", workerHandler.Delete)
					r.Post("/picture", workerHandler.UploadPicture)

					r.Get("/attendance", attendanceHandler.WorkerMonth)
					r.Get("/attendance/{date}", attendanceHandler.WorkerDay)
					r.Get("/payments", paymentHandler.WorkerPayments)
					r.Get("/wages", wageHandler.GetWorkerWages)
					r.Get("/report", reportHandler.GetWorkerReport)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Mark)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", paymentHandler.List)
				r.Post("/", paymentHandler.Create)
				r.Delete("/{id}", paymentHandler.Delete)
			})

			r.Route("/reports/monthly", func(r chi.Router) {
				r.Get("/", reportHandler.GetMonthlyReport)
				r.Get("/top", reportHandler.GetTopPerformers)
				r.Get("/advances", reportHandler.GetAdvanceSummary)
				r.Get("/export", reportHandler.ExportMonthlyReport)
			})
		})
	})
	return r
}
