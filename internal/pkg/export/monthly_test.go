package export

import (
	"bytes"
	"testing"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() report.MonthlyReport {
	present := attendance.StatusPresent
	half := attendance.StatusHalfDay

	daily := make([]report.DailyAttendance, 28)
	for i := range daily {
		daily[i] = report.DailyAttendance{Day: i + 1}
	}
	daily[0].Status = &present
	daily[1].Status = &half

	return report.MonthlyReport{
		Month:             2,
		Year:              2025,
		MonthLabel:        "February 2025",
		DaysInMonth:       28,
		ReportGeneratedAt: "2025-03-01T10:00:00Z",
		TotalWorkers:      1,
		Workers: []report.WorkerMonthSummary{{
			WorkerID:             "w1",
			Name:                 "Rajesh Kumar",
			DailyWage:            decimal.NewFromInt(500),
			PresentDays:          1,
			HalfDays:             1,
			TotalWorkingDays:     decimal.RequireFromString("1.5"),
			AttendancePercentage: decimal.RequireFromString("7.14"),
			GrossWages:           decimal.NewFromInt(750),
			TotalAdvance:         decimal.NewFromInt(1000),
			NetWages:             decimal.NewFromInt(-250),
			Settlement:           report.SettlementExcessAdvance,
			DailyAttendance:      daily,
		}},
		Totals: report.Totals{
			TotalWorkingDays: decimal.RequireFromString("1.5"),
			TotalGrossWages:  decimal.NewFromInt(750),
			TotalAdvances:    decimal.NewFromInt(1000),
			TotalNetWages:    decimal.NewFromInt(-250),
		},
		OverallAttendancePercentage: decimal.RequireFromString("5.36"),
	}
}

func TestMonthlyReportXLSX(t *testing.T) {
	data, err := MonthlyReportXLSX(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, DailySheet}, f.GetSheetList())

	title, err := f.GetCellValue(SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Report - February 2025", title)

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, headerRow+2)
	assert.Equal(t, summaryHeaders, rows[headerRow-1])

	workerRow := rows[headerRow]
	assert.Equal(t, "Rajesh Kumar", workerRow[0])
	assert.Equal(t, "1.5", workerRow[5])
	assert.Equal(t, "-250", workerRow[9])
	assert.Equal(t, "Excess advance", workerRow[10])

	assert.Equal(t, "Total", rows[headerRow+1][0])

	daily, err := f.GetRows(DailySheet)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Len(t, daily[0], 29)
	assert.Equal(t, []string{"Rajesh Kumar", "P", "H", "-"}, daily[1][:4])
}

func TestMonthlyFilename(t *testing.T) {
	assert.Equal(t, "monthly-report-2025-02.xlsx", MonthlyFilename(sampleReport()))
}
