package wage

import (
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/wage"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// Credit is the working-day value of one attendance mark.
func Credit(status attendance.Status) decimal.Decimal {
	switch status {
	case attendance.StatusPresent:
		return decimal.NewFromInt(1)
	case attendance.StatusHalfDay:
		return half
	default:
		return decimal.Zero
	}
}

// Compute derives the month's wage figures for w. Records and payments belonging
// to other workers or other months are ignored, and the net figure may be negative.
func Compute(w worker.Worker, month, year int, records []attendance.Attendance, payments []payment.Payment) wage.Breakdown {
	workingDays := decimal.Zero
	for _, r := range records {
		if r.WorkerID != w.ID || !r.Date.InMonth(monthOf(month), year) {
			continue
		}
		workingDays = workingDays.Add(Credit(r.Status))
	}

	totalAdvance := decimal.Zero
	for _, p := range payments {
		if p.WorkerID != w.ID || p.Type != payment.TypeAdvance || !p.Date.InMonth(monthOf(month), year) {
			continue
		}
		totalAdvance = totalAdvance.Add(p.Amount)
	}

	gross := workingDays.Mul(w.DailyWage)

	return wage.Breakdown{
		WorkerID:     w.ID,
		Month:        month,
		Year:         year,
		WorkingDays:  workingDays,
		DailyWage:    w.DailyWage,
		GrossWages:   gross,
		TotalAdvance: totalAdvance,
		NetWages:     gross.Sub(totalAdvance),
	}
}
