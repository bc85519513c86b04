package report

import (
	"fmt"
	"testing"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mark(workerID string, date string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{WorkerID: workerID, Date: calendar.MustParse(date), Status: status}
}

func days(workerID string, year, month, from, n int, status attendance.Status) []attendance.Attendance {
	out := make([]attendance.Attendance, 0, n)
	for d := from; d < from+n; d++ {
		out = append(out, mark(workerID, fmt.Sprintf("%04d-%02d-%02d", year, month, d), status))
	}
	return out
}

func TestAttendancePercentage_HalfDaysCountAsPresence(t *testing.T) {
	assert.True(t, AttendancePercentage(0, 10, 20).Equal(dec("50")))

	// 10 half days in March: presence is 10 of 31 days, pay covers 5 working days
	w := worker.Worker{ID: "w1", Name: "Amit", DailyWage: decimal.NewFromInt(100)}
	records := days(w.ID, 2025, 3, 1, 10, attendance.StatusHalfDay)

	s := SummarizeWorkerMonth(w, 3, 2025, records, nil)
	assert.Equal(t, 10, s.HalfDays)
	assert.True(t, s.TotalWorkingDays.Equal(dec("5")), "workingDays = %s", s.TotalWorkingDays)
	assert.True(t, s.AttendancePercentage.Equal(dec("32.26")), "pct = %s", s.AttendancePercentage)
	assert.True(t, s.GrossWages.Equal(dec("500")))
}

func TestSummarizeWorkerMonth(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Rajesh Kumar", DailyWage: decimal.NewFromInt(500), JoiningDate: calendar.MustParse("2025-03-20")}

	records := days(w.ID, 2025, 3, 1, 18, attendance.StatusPresent)
	records = append(records, days(w.ID, 2025, 3, 19, 2, attendance.StatusAbsent)...)
	records = append(records, days(w.ID, 2025, 3, 21, 4, attendance.StatusHalfDay)...)
	payments := []payment.Payment{{WorkerID: w.ID, Date: calendar.MustParse("2025-03-10"), Amount: decimal.NewFromInt(1000), Type: payment.TypeAdvance}}

	s := SummarizeWorkerMonth(w, 3, 2025, records, payments)

	assert.Equal(t, 18, s.PresentDays)
	assert.Equal(t, 2, s.AbsentDays)
	assert.Equal(t, 4, s.HalfDays)
	assert.True(t, s.TotalWorkingDays.Equal(dec("20")))
	assert.True(t, s.GrossWages.Equal(dec("10000")))
	assert.True(t, s.NetWages.Equal(dec("9000")))
	assert.Equal(t, report.SettlementToReceive, s.Settlement)
	// 22 of 31 days
	assert.True(t, s.AttendancePercentage.Equal(dec("70.97")), "pct = %s", s.AttendancePercentage)

	require.Len(t, s.DailyAttendance, 31)
	assert.Equal(t, "2025-03-01", s.DailyAttendance[0].Date)
	require.NotNil(t, s.DailyAttendance[0].Status)
	assert.Equal(t, attendance.StatusPresent, *s.DailyAttendance[0].Status)
	assert.Nil(t, s.DailyAttendance[30].Status)
}

func TestSummarizeWorkerMonth_ExcessAdvance(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Amit", DailyWage: decimal.NewFromInt(500)}
	records := days(w.ID, 2025, 3, 1, 2, attendance.StatusPresent)
	payments := []payment.Payment{{WorkerID: w.ID, Date: calendar.MustParse("2025-03-03"), Amount: decimal.NewFromInt(1500), Type: payment.TypeAdvance}}

	s := SummarizeWorkerMonth(w, 3, 2025, records, payments)

	assert.True(t, s.NetWages.Equal(dec("-500")))
	assert.Equal(t, report.SettlementExcessAdvance, s.Settlement)
}

func TestSummarizeWorkerMonth_FebruaryLeapYear(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Amit", DailyWage: decimal.NewFromInt(500)}

	s := SummarizeWorkerMonth(w, 2, 2024, nil, nil)

	assert.Len(t, s.DailyAttendance, 29)
	assert.True(t, s.AttendancePercentage.IsZero())
	assert.True(t, s.NetWages.IsZero())
}

func TestSummarizeFleetMonth(t *testing.T) {
	a := worker.Worker{ID: "a", Name: "Amit", DailyWage: decimal.NewFromInt(100)}
	b := worker.Worker{ID: "b", Name: "Binod", DailyWage: decimal.NewFromInt(200)}

	records := days(a.ID, 2025, 4, 1, 30, attendance.StatusPresent)
	records = append(records, days(b.ID, 2025, 4, 1, 10, attendance.StatusHalfDay)...)
	payments := []payment.Payment{{WorkerID: b.ID, Date: calendar.MustParse("2025-04-02"), Amount: decimal.NewFromInt(300), Type: payment.TypeAdvance}}

	summaries, totals, overall := SummarizeFleetMonth([]worker.Worker{a, b}, 4, 2025, records, payments)

	require.Len(t, summaries, 2)
	assert.True(t, totals.TotalWorkingDays.Equal(dec("35")))
	assert.True(t, totals.TotalGrossWages.Equal(dec("4000")))
	assert.True(t, totals.TotalAdvances.Equal(dec("300")))
	assert.True(t, totals.TotalNetWages.Equal(dec("3700")))
	// 30 present days over 2 workers x 30 days; half days stay out of the overall figure
	assert.True(t, overall.Equal(dec("50")), "overall = %s", overall)
}

func TestSummarizeFleetMonth_Empty(t *testing.T) {
	summaries, totals, overall := SummarizeFleetMonth(nil, 4, 2025, nil, nil)

	assert.Empty(t, summaries)
	assert.True(t, totals.TotalNetWages.IsZero())
	assert.True(t, overall.IsZero())
}

func TestTopPerformers_StableOnTies(t *testing.T) {
	summaries := []report.WorkerMonthSummary{
		{WorkerID: "1", Name: "Amit", AttendancePercentage: dec("80")},
		{WorkerID: "2", Name: "Binod", AttendancePercentage: dec("95")},
		{WorkerID: "3", Name: "Chetan", AttendancePercentage: dec("80")},
		{WorkerID: "4", Name: "Dinesh", AttendancePercentage: dec("60")},
	}

	top := TopPerformers(summaries, 3)

	require.Len(t, top, 3)
	assert.Equal(t, []string{"Binod", "Amit", "Chetan"}, []string{top[0].Name, top[1].Name, top[2].Name})
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 3, top[2].Rank)
	// input is left untouched
	assert.Equal(t, "Amit", summaries[0].Name)
}

func TestAdvanceSummary(t *testing.T) {
	summaries := []report.WorkerMonthSummary{
		{WorkerID: "1", Name: "Amit", TotalAdvance: dec("500")},
		{WorkerID: "2", Name: "Binod", TotalAdvance: decimal.Zero},
		{WorkerID: "3", Name: "Chetan", TotalAdvance: dec("1500"), NetWages: dec("-500"), Settlement: report.SettlementExcessAdvance},
		{WorkerID: "4", Name: "Dinesh", TotalAdvance: dec("500")},
	}

	advances := AdvanceSummary(summaries)

	require.Len(t, advances, 3)
	assert.Equal(t, []string{"Chetan", "Amit", "Dinesh"}, []string{advances[0].Name, advances[1].Name, advances[2].Name})
	assert.Equal(t, report.SettlementExcessAdvance, advances[0].Settlement)
}
