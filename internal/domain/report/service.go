package report

import "context"

// ReportService builds read-only monthly summaries over the state store
type ReportService interface {
	// GetWorkerReport builds the individual monthly report for one worker
	GetWorkerReport(ctx context.Context, req WorkerReportRequest) (WorkerMonthReport, error)

	// GetMonthlyReport builds the whole-roster report including rankings and advances
	GetMonthlyReport(ctx context.Context, req MonthRequest) (MonthlyReport, error)

	GetTopPerformers(ctx context.Context, req TopPerformersRequest) ([]RankedWorker, error)

	GetAdvanceSummary(ctx context.Context, req MonthRequest) ([]AdvanceEntry, error)
}
