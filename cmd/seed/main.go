package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fabtracko/fabtracko-backend-go/internal/config"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/database"
	"github.com/fabtracko/fabtracko-backend-go/internal/repository/postgresql"
	"github.com/fabtracko/fabtracko-backend-go/internal/service/seed"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if cfg.App.StoreDriver != config.StoreDriverPostgres {
		log.Fatalf("seeding needs STORE_DRIVER=%s, got %q", config.StoreDriverPostgres, cfg.App.StoreDriver)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	seeder := seed.NewSeeder(
		postgresql.NewWorkerRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewPaymentRepository(db),
		calendar.NewClock(loc),
	)

	result, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	if !result.Seeded {
		slog.Info("roster already has workers, nothing seeded")
		return
	}
	slog.Info("sample data seeded",
		"workers", result.Workers,
		"attendance", result.Attendance,
		"payments", result.Payments,
	)
}
