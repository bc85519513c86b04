package report

import (
	"sort"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/service/wage"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AttendancePercentage counts half days as full presence, unlike wages.
func AttendancePercentage(presentDays, halfDays, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(presentDays + halfDays)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Round(2)
}

// SummarizeWorkerMonth builds one worker's month. dailyAttendance covers every day
// of the month regardless of the joining date.
func SummarizeWorkerMonth(w worker.Worker, month, year int, records []attendance.Attendance, payments []payment.Payment) report.WorkerMonthSummary {
	m := time.Month(month)
	byDay := make(map[string]attendance.Status, len(records))

	var present, absent, halfDays int
	for _, r := range records {
		if r.WorkerID != w.ID || !r.Date.InMonth(m, year) {
			continue
		}
		byDay[r.Date.String()] = r.Status
		switch r.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		case attendance.StatusHalfDay:
			halfDays++
		}
	}

	days := calendar.MonthDays(m, year)
	daily := make([]report.DailyAttendance, 0, len(days))
	for _, d := range days {
		entry := report.DailyAttendance{Date: d.String(), Day: d.Day()}
		if status, ok := byDay[d.String()]; ok {
			s := status
			entry.Status = &s
		}
		daily = append(daily, entry)
	}

	b := wage.Compute(w, month, year, records, payments)

	return report.WorkerMonthSummary{
		WorkerID:             w.ID,
		Name:                 w.Name,
		DailyWage:            w.DailyWage,
		ProfilePicture:       w.ProfilePicture,
		PresentDays:          present,
		AbsentDays:           absent,
		HalfDays:             halfDays,
		TotalWorkingDays:     b.WorkingDays,
		AttendancePercentage: AttendancePercentage(present, halfDays, len(days)),
		TotalAdvance:         b.TotalAdvance,
		GrossWages:           b.GrossWages,
		NetWages:             b.NetWages,
		Settlement:           report.SettlementFor(b.NetWages),
		DailyAttendance:      daily,
	}
}

// SummarizeFleetMonth summarises every worker in roster order and reduces the totals.
func SummarizeFleetMonth(workers []worker.Worker, month, year int, records []attendance.Attendance, payments []payment.Payment) ([]report.WorkerMonthSummary, report.Totals, decimal.Decimal) {
	recordsBy := make(map[string][]attendance.Attendance)
	for _, r := range records {
		recordsBy[r.WorkerID] = append(recordsBy[r.WorkerID], r)
	}
	paymentsBy := make(map[string][]payment.Payment)
	for _, p := range payments {
		paymentsBy[p.WorkerID] = append(paymentsBy[p.WorkerID], p)
	}

	totals := report.Totals{
		TotalWorkingDays: decimal.Zero,
		TotalGrossWages:  decimal.Zero,
		TotalAdvances:    decimal.Zero,
		TotalNetWages:    decimal.Zero,
	}
	presentDays := 0
	summaries := make([]report.WorkerMonthSummary, 0, len(workers))
	for _, w := range workers {
		s := SummarizeWorkerMonth(w, month, year, recordsBy[w.ID], paymentsBy[w.ID])
		summaries = append(summaries, s)
		presentDays += s.PresentDays

		totals.TotalWorkingDays = totals.TotalWorkingDays.Add(s.TotalWorkingDays)
		totals.TotalGrossWages = totals.TotalGrossWages.Add(s.GrossWages)
		totals.TotalAdvances = totals.TotalAdvances.Add(s.TotalAdvance)
		totals.TotalNetWages = totals.TotalNetWages.Add(s.NetWages)
	}

	overall := decimal.Zero
	daysInMonth := calendar.DaysInMonth(time.Month(month), year)
	if len(workers) > 0 {
		overall = decimal.NewFromInt(int64(presentDays)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(len(workers) * daysInMonth))).
			Round(2)
	}

	return summaries, totals, overall
}

// TopPerformers ranks by attendance percentage, highest first. The sort is stable,
// so equal percentages keep roster (name) order.
func TopPerformers(summaries []report.WorkerMonthSummary, limit int) []report.RankedWorker {
	ranked := make([]report.WorkerMonthSummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AttendancePercentage.GreaterThan(ranked[j].AttendancePercentage)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]report.RankedWorker, 0, len(ranked))
	for i, s := range ranked {
		out = append(out, report.RankedWorker{
			Rank:                 i + 1,
			WorkerID:             s.WorkerID,
			Name:                 s.Name,
			AttendancePercentage: s.AttendancePercentage,
			TotalWorkingDays:     s.TotalWorkingDays,
		})
	}
	return out
}

// AdvanceSummary lists workers who took advances, largest first, stable on ties.
func AdvanceSummary(summaries []report.WorkerMonthSummary) []report.AdvanceEntry {
	out := make([]report.AdvanceEntry, 0)
	for _, s := range summaries {
		if !s.TotalAdvance.IsPositive() {
			continue
		}
		out = append(out, report.AdvanceEntry{
			WorkerID:     s.WorkerID,
			Name:         s.Name,
			TotalAdvance: s.TotalAdvance,
			GrossWages:   s.GrossWages,
			NetWages:     s.NetWages,
			Settlement:   s.Settlement,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalAdvance.GreaterThan(out[j].TotalAdvance)
	})
	return out
}
