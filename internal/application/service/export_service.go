package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

// ExportService renders dashboard snapshots as Excel workbooks
type ExportService struct {
	dashboard *DashboardService
}

// NewExportService creates a new export service
func NewExportService(dashboard *DashboardService) *ExportService {
	return &ExportService{dashboard: dashboard}
}

// ExportSnapshot aggregates the filtered dataset and writes it to an .xlsx
// workbook: one KPI summary sheet, the two category breakdowns, and the
// top-restaurant ranking.
func (s *ExportService) ExportSnapshot(ctx context.Context, criteria entity.FilterCriteria) (*bytes.Buffer, error) {
	snap, err := s.dashboard.GetSnapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	kpis := []struct {
		label string
		value any
	}{
		{"Rows", snap.RowCount},
		{"Total Revenue", snap.TotalRevenue},
		{"Total Expenses", snap.TotalExpenses},
		{"Total Orders", snap.TotalOrders},
		{"Net Profit", snap.NetProfit},
		{"Reconciliation Rate (%)", snap.ReconciliationRate},
		{"Profit Margin (%)", snap.ProfitMargin},
		{"Restaurants (UK)", snap.Geography.UK},
		{"Restaurants (India)", snap.Geography.India},
		{"Restaurants (Other)", snap.Geography.Other},
	}
	f.SetCellValue(summary, "A1", "Metric")
	f.SetCellValue(summary, "B1", "Value")
	for i, kpi := range kpis {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+2), kpi.label)
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+2), kpi.value)
	}

	if err := writeBreakdownSheet(f, "Revenue Breakdown", [][2]any{
		{"Food", snap.RevenueBreakdown.Food},
		{"Drinks", snap.RevenueBreakdown.Drinks},
		{"Other", snap.RevenueBreakdown.Other},
		{"Service", snap.RevenueBreakdown.Service},
		{"Delivery", snap.RevenueBreakdown.Delivery},
	}); err != nil {
		return nil, err
	}
	if err := writeBreakdownSheet(f, "Expense Breakdown", [][2]any{
		{"Bills", snap.ExpenseBreakdown.Bills},
		{"Vendors", snap.ExpenseBreakdown.Vendors},
		{"Wage Advance", snap.ExpenseBreakdown.WageAdvance},
		{"Repairs", snap.ExpenseBreakdown.Repairs},
		{"Sundries", snap.ExpenseBreakdown.Sundries},
	}); err != nil {
		return nil, err
	}

	const ranking = "Top Restaurants"
	if _, err := f.NewSheet(ranking); err != nil {
		return nil, err
	}
	headers := []string{"Restaurant ID", "Name", "Orders", "Revenue", "Expenses", "Profit"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ranking, cell, h)
	}
	for i, r := range snap.TopRestaurants {
		row := i + 2
		f.SetCellValue(ranking, fmt.Sprintf("A%d", row), r.RestaurantID)
		f.SetCellValue(ranking, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(ranking, fmt.Sprintf("C%d", row), r.Orders)
		f.SetCellValue(ranking, fmt.Sprintf("D%d", row), r.Revenue)
		f.SetCellValue(ranking, fmt.Sprintf("E%d", row), r.Expenses)
		f.SetCellValue(ranking, fmt.Sprintf("F%d", row), r.Profit)
	}

	return f.WriteToBuffer()
}

func writeBreakdownSheet(f *excelize.File, sheet string, rows [][2]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Category")
	f.SetCellValue(sheet, "B1", "Amount")
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r[1])
	}
	return nil
}
