package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWorker(t *testing.T, repo worker.WorkerRepository, name string) worker.Worker {
	t.Helper()
	w, err := repo.Create(context.Background(), worker.Worker{
		Name:        name,
		JoiningDate: calendar.MustParse("2023-01-15"),
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	return w
}

func TestWorkerRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewWorkerRepository(db)
	ctx := context.Background()

	created := createWorker(t, repo, "Rajesh Kumar")
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.DailyWage.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "2023-01-15", created.JoiningDate.String())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", got.Name)

	exists, err := repo.ExistsByName(ctx, "rajesh kumar", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Rajesh Kumar", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	got.DailyWage = decimal.RequireFromString("525.50")
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.True(t, updated.DailyWage.Equal(decimal.RequireFromString("525.50")))

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_ListOrdersByName(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewWorkerRepository(db)

	createWorker(t, repo, "sunil Verma")
	createWorker(t, repo, "Amit Singh")
	createWorker(t, repo, "Rajesh Kumar")

	workers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 3)
	assert.Equal(t, "Amit Singh", workers[0].Name)
	assert.Equal(t, "Rajesh Kumar", workers[1].Name)
	assert.Equal(t, "sunil Verma", workers[2].Name)
}

func TestAttendanceRepository_UpsertKeepsSingleRecord(t *testing.T) {
	db := newTestDB(t)
	workers := postgresql.NewWorkerRepository(db)
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	w := createWorker(t, workers, "Rajesh Kumar")
	date := calendar.MustParse("2025-03-10")

	first, created, err := repo.Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusAbsent, second.Status)

	records, err := repo.List(ctx, attendance.Query{WorkerID: w.ID, Month: time.March, Year: 2025})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)

	_, _, err = repo.Upsert(ctx, attendance.Attendance{WorkerID: "0190a4c2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", Date: date, Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	workers := postgresql.NewWorkerRepository(db)
	records := postgresql.NewAttendanceRepository(db)
	payments := postgresql.NewPaymentRepository(db)
	ctx := context.Background()

	w := createWorker(t, workers, "Amit Singh")
	other := createWorker(t, workers, "Sunil Verma")

	_, _, err := records.Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: calendar.MustParse("2025-03-01"), Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, _, err = records.Upsert(ctx, attendance.Attendance{WorkerID: other.ID, Date: calendar.MustParse("2025-03-01"), Status: attendance.StatusHalfDay})
	require.NoError(t, err)
	_, err = payments.Create(ctx, payment.Payment{WorkerID: w.ID, Date: calendar.MustParse("2025-03-02"), Amount: decimal.NewFromInt(1000), Type: payment.TypeAdvance})
	require.NoError(t, err)

	require.NoError(t, workers.Delete(ctx, w.ID))

	left, err := records.List(ctx, attendance.Query{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].WorkerID)

	paid, err := payments.List(ctx, payment.Query{WorkerID: w.ID})
	require.NoError(t, err)
	assert.Empty(t, paid)

	assert.ErrorIs(t, workers.Delete(ctx, w.ID), worker.ErrWorkerNotFound)
}

func TestPaymentRepository_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	workers := postgresql.NewWorkerRepository(db)
	repo := postgresql.NewPaymentRepository(db)
	ctx := context.Background()

	w := createWorker(t, workers, "Rajesh Kumar")

	march, err := repo.Create(ctx, payment.Payment{WorkerID: w.ID, Date: calendar.MustParse("2025-03-05"), Amount: decimal.NewFromInt(1000), Type: payment.TypeAdvance})
	require.NoError(t, err)
	_, err = repo.Create(ctx, payment.Payment{WorkerID: w.ID, Date: calendar.MustParse("2025-04-01"), Amount: decimal.NewFromInt(200), Type: payment.TypeAdvance})
	require.NoError(t, err)

	inMarch, err := repo.List(ctx, payment.Query{WorkerID: w.ID, Month: time.March, Year: 2025})
	require.NoError(t, err)
	require.Len(t, inMarch, 1)
	assert.True(t, inMarch[0].Amount.Equal(decimal.NewFromInt(1000)))

	require.NoError(t, repo.Delete(ctx, march.ID))
	assert.ErrorIs(t, repo.Delete(ctx, march.ID), payment.ErrPaymentNotFound)
}
