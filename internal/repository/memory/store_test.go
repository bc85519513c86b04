package memory

import (
	"context"
	"testing"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addWorker(t *testing.T, s *Store, name string) worker.Worker {
	t.Helper()
	w, err := s.Workers().Create(context.Background(), worker.Worker{
		Name:        name,
		JoiningDate: calendar.MustParse("2023-01-15"),
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	return w
}

func TestWorkerRepository_ListOrder(t *testing.T) {
	s := NewStore()
	addWorker(t, s, "sunil")
	addWorker(t, s, "Amit")
	addWorker(t, s, "Rajesh")

	workers, err := s.Workers().List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 3)
	assert.Equal(t, []string{"Amit", "Rajesh", "sunil"}, []string{workers[0].Name, workers[1].Name, workers[2].Name})
}

func TestWorkerRepository_ReadsReturnCopies(t *testing.T) {
	s := NewStore()
	pic := "/uploads/a.jpg"
	created, err := s.Workers().Create(context.Background(), worker.Worker{Name: "Amit", DailyWage: decimal.NewFromInt(1), ProfilePicture: &pic})
	require.NoError(t, err)

	got, err := s.Workers().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	*got.ProfilePicture = "changed"

	again, err := s.Workers().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", *again.ProfilePicture)
}

func TestWorkerRepository_ExistsByName(t *testing.T) {
	s := NewStore()
	w := addWorker(t, s, "Rajesh Kumar")
	ctx := context.Background()

	exists, err := s.Workers().ExistsByName(ctx, " rajesh kumar ", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Workers().ExistsByName(ctx, "Rajesh Kumar", w.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkerRepository_UpdateMissing(t *testing.T) {
	s := NewStore()
	_, err := s.Workers().Update(context.Background(), worker.Worker{ID: "missing", Name: "Amit"})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestAttendanceRepository_Upsert(t *testing.T) {
	s := NewStore()
	w := addWorker(t, s, "Rajesh")
	ctx := context.Background()
	date := calendar.MustParse("2025-03-10")

	first, created, err := s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	records, err := s.Attendance().List(ctx, attendance.Query{WorkerID: w.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)

	got, err := s.Attendance().GetByWorkerAndDate(ctx, w.ID, date)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, attendance.StatusAbsent, got.Status)

	none, err := s.Attendance().GetByWorkerAndDate(ctx, w.ID, date.AddDays(1))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAttendanceRepository_RejectsBeforeMutation(t *testing.T) {
	s := NewStore()
	w := addWorker(t, s, "Rajesh")
	ctx := context.Background()
	date := calendar.MustParse("2025-03-10")

	_, _, err := s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: "late"})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)

	_, _, err = s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: "ghost", Date: date, Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	records, err := s.Attendance().List(ctx, attendance.Query{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceRepository_ListFilters(t *testing.T) {
	s := NewStore()
	a := addWorker(t, s, "Amit")
	b := addWorker(t, s, "Binod")
	ctx := context.Background()

	marks := []attendance.Attendance{
		{WorkerID: a.ID, Date: calendar.MustParse("2025-03-02"), Status: attendance.StatusPresent},
		{WorkerID: b.ID, Date: calendar.MustParse("2025-03-01"), Status: attendance.StatusHalfDay},
		{WorkerID: a.ID, Date: calendar.MustParse("2025-03-01"), Status: attendance.StatusAbsent},
		{WorkerID: a.ID, Date: calendar.MustParse("2025-04-01"), Status: attendance.StatusPresent},
	}
	for _, m := range marks {
		_, _, err := s.Attendance().Upsert(ctx, m)
		require.NoError(t, err)
	}

	march, err := s.Attendance().List(ctx, attendance.Query{Month: time.March, Year: 2025})
	require.NoError(t, err)
	require.Len(t, march, 3)
	assert.Equal(t, "2025-03-01", march[0].Date.String())
	assert.Equal(t, "2025-03-02", march[2].Date.String())

	day := calendar.MustParse("2025-03-01")
	onDay, err := s.Attendance().List(ctx, attendance.Query{Date: &day})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	mine, err := s.Attendance().List(ctx, attendance.Query{WorkerID: a.ID, Month: time.March, Year: 2025})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestPaymentRepository(t *testing.T) {
	s := NewStore()
	w := addWorker(t, s, "Amit")
	ctx := context.Background()

	p, err := s.Payments().Create(ctx, payment.Payment{WorkerID: w.ID, Date: calendar.MustParse("2025-03-05"), Amount: decimal.NewFromInt(1000), Type: payment.TypeAdvance})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	_, err = s.Payments().Create(ctx, payment.Payment{WorkerID: w.ID, Date: calendar.MustParse("2025-03-05"), Amount: decimal.Zero, Type: payment.TypeAdvance})
	assert.Error(t, err)

	_, err = s.Payments().Create(ctx, payment.Payment{WorkerID: "ghost", Date: calendar.MustParse("2025-03-05"), Amount: decimal.NewFromInt(1), Type: payment.TypeAdvance})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	got, err := s.Payments().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(1000)))

	require.NoError(t, s.Payments().Delete(ctx, p.ID))
	assert.ErrorIs(t, s.Payments().Delete(ctx, p.ID), payment.ErrPaymentNotFound)
}

func TestWorkerRepository_DeleteCascades(t *testing.T) {
	s := NewStore()
	w := addWorker(t, s, "Amit")
	other := addWorker(t, s, "Binod")
	ctx := context.Background()
	date := calendar.MustParse("2025-03-01")

	_, _, err := s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, _, err = s.Attendance().Upsert(ctx, attendance.Attendance{WorkerID: other.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = s.Payments().Create(ctx, payment.Payment{WorkerID: w.ID, Date: date, Amount: decimal.NewFromInt(100), Type: payment.TypeAdvance})
	require.NoError(t, err)

	require.NoError(t, s.Workers().Delete(ctx, w.ID))

	records, err := s.Attendance().List(ctx, attendance.Query{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].WorkerID)

	payments, err := s.Payments().List(ctx, payment.Query{})
	require.NoError(t, err)
	assert.Empty(t, payments)

	// a re-created worker with the same name starts clean
	again := addWorker(t, s, "Amit")
	mine, err := s.Attendance().List(ctx, attendance.Query{WorkerID: again.ID})
	require.NoError(t, err)
	assert.Empty(t, mine)

	assert.ErrorIs(t, s.Workers().Delete(ctx, w.ID), worker.ErrWorkerNotFound)
}
