package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rosboard/ros-analytics-api/internal/application/service"
	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

type stubDataset struct {
	loaded      bool
	rows        []entity.DailyRow
	restaurants []entity.Restaurant
}

func (s *stubDataset) Rows(ctx context.Context) []entity.DailyRow          { return s.rows }
func (s *stubDataset) Clients(ctx context.Context) []entity.Client         { return nil }
func (s *stubDataset) Restaurants(ctx context.Context) []entity.Restaurant { return s.restaurants }
func (s *stubDataset) Refresh(ctx context.Context) error                   { return nil }
func (s *stubDataset) Meta(ctx context.Context) entity.DatasetMeta {
	return entity.DatasetMeta{Loaded: s.loaded, RowCount: len(s.rows)}
}

func testRouter(ds *stubDataset) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dashboardService := service.NewDashboardService(ds)
	h := NewDashboardHandler(
		dashboardService,
		service.NewInsightService(dashboardService),
		service.NewExportService(dashboardService),
	)

	router := gin.New()
	router.GET("/api/v1/dashboard", h.GetSnapshot)
	router.GET("/api/v1/dashboard/insights", h.GetInsights)
	router.GET("/api/v1/dashboard/export", h.Export)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestGetSnapshotEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(&stubDataset{
		loaded: true,
		rows: []entity.DailyRow{
			{RestaurantID: 1, ClientID: 10, Date: "2025-01-01", Revenue: 100, Expenses: 40, Profit: 60, Orders: 5},
			{RestaurantID: 2, ClientID: 20, Date: "2025-01-02", Revenue: 50, Expenses: 50, Profit: 0, Orders: 2},
		},
	})

	w, env := doRequest(t, router, "/api/v1/dashboard?client_id=10")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var snap service.AggregateSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	require.Equal(t, 1, snap.RowCount)
	require.Equal(t, 100.0, snap.TotalRevenue)
}

func TestGetSnapshotBadClientID(t *testing.T) {
	t.Parallel()

	router := testRouter(&stubDataset{loaded: true})
	w, env := doRequest(t, router, "/api/v1/dashboard?client_id=abc")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
}

func TestGetSnapshotDatasetUnavailable(t *testing.T) {
	t.Parallel()

	router := testRouter(&stubDataset{loaded: false})
	w, env := doRequest(t, router, "/api/v1/dashboard")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.False(t, env.Success)
}

func TestGetInsightsEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(&stubDataset{
		loaded: true,
		rows: []entity.DailyRow{
			{RestaurantID: 1, Date: "2025-01-01", Revenue: 100, Expenses: 40, Profit: 60, Orders: 5},
		},
	})

	w, env := doRequest(t, router, "/api/v1/dashboard/insights")
	require.Equal(t, http.StatusOK, w.Code)

	var report service.InsightReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report.Recommendations, 4)
}

func TestExportEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(&stubDataset{
		loaded: true,
		rows: []entity.DailyRow{
			{RestaurantID: 1, Date: "2025-01-01", Revenue: 100},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.NotZero(t, w.Body.Len())
}
