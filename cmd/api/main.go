package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/config"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	appHTTP "github.com/fabtracko/fabtracko-backend-go/internal/handler/http"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/database"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/jwt"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/storage"
	"github.com/fabtracko/fabtracko-backend-go/internal/repository/memory"
	"github.com/fabtracko/fabtracko-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fabtracko/fabtracko-backend-go/internal/service/attendance"
	serviceAuth "github.com/fabtracko/fabtracko-backend-go/internal/service/auth"
	"github.com/fabtracko/fabtracko-backend-go/internal/service/file"
	paymentService "github.com/fabtracko/fabtracko-backend-go/internal/service/payment"
	reportService "github.com/fabtracko/fabtracko-backend-go/internal/service/report"
	wageService "github.com/fabtracko/fabtracko-backend-go/internal/service/wage"
	workerService "github.com/fabtracko/fabtracko-backend-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	clock := calendar.NewClock(loc)

	var (
		workerRepo     worker.WorkerRepository
		attendanceRepo attendance.AttendanceRepository
		paymentRepo    payment.PaymentRepository
	)
	switch cfg.App.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Error applying schema: ", err)
		}

		workerRepo = postgresql.NewWorkerRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		paymentRepo = postgresql.NewPaymentRepository(db)
	case config.StoreDriverMemory:
		slog.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		workerRepo = store.Workers()
		attendanceRepo = store.Attendance()
		paymentRepo = store.Payments()
	}

	var (
		fileStorage storage.FileStorage
		uploadsDir  string
	)
	switch cfg.Storage.Type {
	case config.StorageTypeLocal:
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
		fileStorage = local
		uploadsDir = local.BasePath()
	case config.StorageTypeS3:
		fileStorage, err = storage.NewS3Storage(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3PublicURL)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage: ", err)
		}
	}

	passwordHash := []byte(cfg.Admin.PasswordHash)
	if len(passwordHash) == 0 {
		passwordHash, err = serviceAuth.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatal(err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(serviceAuth.Credentials{
		Username:     cfg.Admin.Username,
		PasswordHash: passwordHash,
	}, JWTService)

	fileService := file.NewFileService(fileStorage)
	workerSvc := workerService.NewWorkerService(workerRepo, fileService, clock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, clock)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, workerRepo, clock)
	wageSvc := wageService.NewWageService(workerRepo, attendanceRepo, paymentRepo)
	reportSvc := reportService.NewReportService(workerRepo, attendanceRepo, paymentRepo, clock)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.CORSOrigins,
			UploadsDir:     uploadsDir,
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewWorkerHandler(workerSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, clock),
		appHTTP.NewPaymentHandler(paymentSvc),
		appHTTP.NewWageHandler(wageSvc, clock),
		appHTTP.NewReportHandler(reportSvc, clock),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", server.Addr, "store", cfg.App.StoreDriver, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fabtracko"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}
