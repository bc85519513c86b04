package report

import (
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultTopPerformers = 5

type Settlement string

const (
	SettlementToReceive     Settlement = "to_receive"
	SettlementExcessAdvance Settlement = "excess_advance"
)

// SettlementFor classifies a net figure without clamping it.
func SettlementFor(net decimal.Decimal) Settlement {
	if net.IsNegative() {
		return SettlementExcessAdvance
	}
	return SettlementToReceive
}

type MonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthRequest) Validate(today calendar.Date) error {
	var errs validator.ValidationErrors
	r.validate(&errs, today)
	return errs.Err()
}

func (r *MonthRequest) validate(errs *validator.ValidationErrors, today calendar.Date) {
	if !validator.IsValidMonth(r.Month) {
		errs.Add("month", "month must be between 1 and 12")
		return
	}
	if r.Year < 1900 {
		errs.Add("year", "year must be a valid year")
		return
	}
	if validator.IsFutureMonth(r.Month, r.Year, today) {
		errs.Add("month", "Cannot generate a report for a future month")
	}
}

type WorkerReportRequest struct {
	WorkerID string `json:"workerId"`
	MonthRequest
}

func (r *WorkerReportRequest) Validate(today calendar.Date) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.WorkerID) {
		errs.Add("workerId", "workerId is required")
	}
	r.MonthRequest.validate(&errs, today)
	return errs.Err()
}

type TopPerformersRequest struct {
	MonthRequest
	Limit int `json:"limit"`
}

// Validate defaults a zero limit.
func (r *TopPerformersRequest) Validate(today calendar.Date) error {
	var errs validator.ValidationErrors
	r.MonthRequest.validate(&errs, today)
	if r.Limit == 0 {
		r.Limit = DefaultTopPerformers
	} else if r.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	return errs.Err()
}

// ========================================
// WORKER MONTH SUMMARY
// ========================================

type DailyAttendance struct {
	Date   string             `json:"date"`
	Day    int                `json:"day"`
	Status *attendance.Status `json:"status"`
}

type WorkerMonthSummary struct {
	WorkerID       string          `json:"workerId"`
	Name           string          `json:"name"`
	DailyWage      decimal.Decimal `json:"dailyWage"`
	ProfilePicture *string         `json:"profilePicture,omitempty"`

	PresentDays          int             `json:"presentDays"`
	AbsentDays           int             `json:"absentDays"`
	HalfDays             int             `json:"halfDays"`
	TotalWorkingDays     decimal.Decimal `json:"totalWorkingDays"`
	AttendancePercentage decimal.Decimal `json:"attendancePercentage"`

	TotalAdvance decimal.Decimal `json:"totalAdvance"`
	GrossWages   decimal.Decimal `json:"grossWages"`
	NetWages     decimal.Decimal `json:"netWages"`
	Settlement   Settlement      `json:"settlement"`

	DailyAttendance []DailyAttendance `json:"dailyAttendance"`
}

// WorkerMonthReport is the individual report: the summary plus the month's payments.
type WorkerMonthReport struct {
	Month             int                       `json:"month"`
	Year              int                       `json:"year"`
	MonthLabel        string                    `json:"monthLabel"`
	DaysInMonth       int                       `json:"daysInMonth"`
	ReportGeneratedAt string                    `json:"reportGeneratedAt"`
	Summary           WorkerMonthSummary        `json:"summary"`
	Payments          []payment.PaymentResponse `json:"payments"`
}

// ========================================
// FLEET MONTH REPORT
// ========================================

type Totals struct {
	TotalWorkingDays decimal.Decimal `json:"totalWorkingDays"`
	TotalGrossWages  decimal.Decimal `json:"totalGrossWages"`
	TotalAdvances    decimal.Decimal `json:"totalAdvances"`
	TotalNetWages    decimal.Decimal `json:"totalNetWages"`
}

type RankedWorker struct {
	Rank                 int             `json:"rank"`
	WorkerID             string          `json:"workerId"`
	Name                 string          `json:"name"`
	AttendancePercentage decimal.Decimal `json:"attendancePercentage"`
	TotalWorkingDays     decimal.Decimal `json:"totalWorkingDays"`
}

type AdvanceEntry struct {
	WorkerID     string          `json:"workerId"`
	Name         string          `json:"name"`
	TotalAdvance decimal.Decimal `json:"totalAdvance"`
	GrossWages   decimal.Decimal `json:"grossWages"`
	NetWages     decimal.Decimal `json:"netWages"`
	Settlement   Settlement      `json:"settlement"`
}

type MonthlyReport struct {
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	MonthLabel        string `json:"monthLabel"`
	DaysInMonth       int    `json:"daysInMonth"`
	ReportGeneratedAt string `json:"reportGeneratedAt"`
	TotalWorkers      int    `json:"totalWorkers"`

	Workers                     []WorkerMonthSummary `json:"workers"`
	Totals                      Totals               `json:"totals"`
	OverallAttendancePercentage decimal.Decimal      `json:"overallAttendancePercentage"`

	TopPerformers  []RankedWorker `json:"topPerformers"`
	AdvanceSummary []AdvanceEntry `json:"advanceSummary"`
}
