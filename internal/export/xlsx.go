package export

import (
	"fmt"

	"github.com/bexbot-lab/bexbot-console/internal/analytics"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetByDay    = "By Day"
	sheetChannels = "Channels"
)

// BuildMetricsWorkbook renders one bot's metrics report into an XLSX
// workbook with a summary sheet and one sheet per chart.
func BuildMetricsWorkbook(botID string, window analytics.Window, report *analytics.MetricsReport) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile starts with a sheet named "Sheet1"; rename it to Summary.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeSummary(f, botID, window, report); err != nil {
		return nil, err
	}
	if err := writeByDay(f, report.ConversationsByDay); err != nil {
		return nil, err
	}
	if err := writeChannels(f, report.ChannelDistribution); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummary(f *excelize.File, botID string, window analytics.Window, report *analytics.MetricsReport) error {
	rows := [][]interface{}{
		{"Bot", botID},
		{"Window start", window.Start.Format("2006-01-02")},
		{"Window end", window.End.Format("2006-01-02")},
		{"Total conversations", report.TotalConversations},
		{"Resolution rate (%)", report.ResolutionRate},
		{"Unique users", report.UniqueUsers},
		{"Average duration (s)", optionalFloat(report.AverageDurationSeconds)},
		{"Average satisfaction", optionalFloat(report.AverageSatisfaction)},
		{"Change vs prior window (%)", optionalInt(report.ConversationsDeltaPercent)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeByDay(f *excelize.File, days []analytics.DayCount) error {
	if _, err := f.NewSheet(sheetByDay); err != nil {
		return fmt.Errorf("failed to create by-day sheet: %w", err)
	}

	header := []interface{}{"Date", "Conversations"}
	if err := f.SetSheetRow(sheetByDay, "A1", &header); err != nil {
		return fmt.Errorf("failed to write by-day header: %w", err)
	}

	for i, day := range days {
		row := []interface{}{day.Date, day.Count}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address by-day row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetByDay, cell, &row); err != nil {
			return fmt.Errorf("failed to write by-day row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeChannels(f *excelize.File, channels []analytics.ChannelShare) error {
	if _, err := f.NewSheet(sheetChannels); err != nil {
		return fmt.Errorf("failed to create channels sheet: %w", err)
	}

	header := []interface{}{"Channel", "Share (%)"}
	if err := f.SetSheetRow(sheetChannels, "A1", &header); err != nil {
		return fmt.Errorf("failed to write channels header: %w", err)
	}

	for i, ch := range channels {
		row := []interface{}{ch.Name, ch.Percent}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address channels row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetChannels, cell, &row); err != nil {
			return fmt.Errorf("failed to write channels row %d: %w", i+2, err)
		}
	}
	return nil
}

// optionalFloat renders a nullable metric; absent values export as "n/a"
// rather than a misleading zero.
func optionalFloat(v *float64) interface{} {
	if v == nil {
		return "n/a"
	}
	return *v
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return "n/a"
	}
	return *v
}
