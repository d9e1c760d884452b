package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rosboard/ros-analytics-api/internal/application/service"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	insightService   *service.InsightService
	exportService    *service.ExportService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService *service.DashboardService,
	insightService *service.InsightService,
	exportService *service.ExportService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		insightService:   insightService,
		exportService:    exportService,
	}
}

// GetSnapshot handles getting the aggregate snapshot for the bound filters
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	criteria, err := bindCriteria(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.dashboardService.GetSnapshot(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard snapshot retrieved successfully", snap)
}

// GetInsights handles getting recommendations and derived metrics
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	criteria, err := bindCriteria(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.insightService.GetInsights(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insights retrieved successfully", report)
}

// Export handles downloading the snapshot as an Excel workbook
func (h *DashboardHandler) Export(c *gin.Context) {
	criteria, err := bindCriteria(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := h.exportService.ExportSnapshot(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "dashboard-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
