// Package export renders reports as spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DailySheet   = "Daily Attendance"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	headerRow = 4
)

var summaryHeaders = []string{
	"Worker", "Daily Wage", "Present", "Absent", "Half Days", "Working Days",
	"Attendance %", "Gross Wages", "Advance", "Net Wages", "Settlement",
}

var statusMarks = map[attendance.Status]string{
	attendance.StatusPresent: "P",
	attendance.StatusAbsent:  "A",
	attendance.StatusHalfDay: "H",
}

// MonthlyFilename is the download name for a report, e.g. "monthly-report-2025-03.xlsx".
func MonthlyFilename(r report.MonthlyReport) string {
	return fmt.Sprintf("monthly-report-%04d-%02d.xlsx", r.Year, r.Month)
}

// MonthlyReportXLSX writes the summary and the day-by-day register as two sheets.
func MonthlyReportXLSX(r report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DailySheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeSummary(f, r, bold); err != nil {
		return nil, err
	}
	if err := writeDaily(f, r, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeSummary(f *excelize.File, r report.MonthlyReport, bold int) error {
	sheet := SummarySheet

	cells := map[string]interface{}{
		"A1": "Monthly Report - " + r.MonthLabel,
		"A2": "Generated " + r.ReportGeneratedAt,
	}
	for cell, v := range cells {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("style title: %w", err)
	}

	if err := writeRow(f, sheet, headerRow, toCells(summaryHeaders)); err != nil {
		return err
	}
	if err := styleRow(f, sheet, headerRow, len(summaryHeaders), bold); err != nil {
		return err
	}

	row := headerRow + 1
	for _, w := range r.Workers {
		values := []interface{}{
			w.Name,
			w.DailyWage.InexactFloat64(),
			w.PresentDays,
			w.AbsentDays,
			w.HalfDays,
			w.TotalWorkingDays.InexactFloat64(),
			w.AttendancePercentage.InexactFloat64(),
			w.GrossWages.InexactFloat64(),
			w.TotalAdvance.InexactFloat64(),
			w.NetWages.InexactFloat64(),
			settlementLabel(w.Settlement),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	totals := []interface{}{
		"Total", nil, nil, nil, nil,
		r.Totals.TotalWorkingDays.InexactFloat64(),
		r.OverallAttendancePercentage.InexactFloat64(),
		r.Totals.TotalGrossWages.InexactFloat64(),
		r.Totals.TotalAdvances.InexactFloat64(),
		r.Totals.TotalNetWages.InexactFloat64(),
	}
	if err := writeRow(f, sheet, row, totals); err != nil {
		return err
	}
	if err := styleRow(f, sheet, row, len(totals), bold); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeDaily(f *excelize.File, r report.MonthlyReport, bold int) error {
	sheet := DailySheet

	header := []interface{}{"Worker"}
	for day := 1; day <= r.DaysInMonth; day++ {
		header = append(header, day)
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 1, len(header), bold); err != nil {
		return err
	}

	for i, w := range r.Workers {
		values := []interface{}{w.Name}
		for _, d := range w.DailyAttendance {
			mark := "-"
			if d.Status != nil {
				mark = statusMarks[*d.Status]
			}
			values = append(values, mark)
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values = append([]interface{}(nil), values...)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func settlementLabel(s report.Settlement) string {
	if s == report.SettlementExcessAdvance {
		return "Excess advance"
	}
	return "To receive"
}
