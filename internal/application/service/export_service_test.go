package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

func TestExportSnapshotWorkbook(t *testing.T) {
	t.Parallel()

	ds := &stubDataset{
		loaded: true,
		rows: []entity.DailyRow{
			{RestaurantID: 1, RestaurantName: "Alpha", Date: "2025-01-01", Revenue: 100, Expenses: 40, Profit: 60, Orders: 5, FoodPayment: 70, DrinksPayment: 30},
			{RestaurantID: 2, RestaurantName: "Beta", Date: "2025-01-02", Revenue: 50, Expenses: 50, Profit: 0, Orders: 2, BillsExpense: 50},
		},
	}
	svc := NewExportService(NewDashboardService(ds))

	buf, err := svc.ExportSnapshot(context.Background(), entity.FilterCriteria{})
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	require.Contains(t, sheets, "Summary")
	require.Contains(t, sheets, "Revenue Breakdown")
	require.Contains(t, sheets, "Expense Breakdown")
	require.Contains(t, sheets, "Top Restaurants")

	revenue, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	require.Equal(t, "150", revenue)

	topName, err := f.GetCellValue("Top Restaurants", "B2")
	require.NoError(t, err)
	require.Equal(t, "Alpha", topName)
}

func TestExportSnapshotUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewExportService(NewDashboardService(&stubDataset{}))
	_, err := svc.ExportSnapshot(context.Background(), entity.FilterCriteria{})
	require.Error(t, err)
}
