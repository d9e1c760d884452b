package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rosboard/ros-analytics-api/internal/domain/repository"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/dto/response"
	"github.com/rosboard/ros-analytics-api/pkg/apperror"
)

// DatasetHandler handles dataset lifecycle HTTP requests
type DatasetHandler struct {
	dataset repository.DatasetRepository
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(dataset repository.DatasetRepository) *DatasetHandler {
	return &DatasetHandler{dataset: dataset}
}

// GetMeta handles getting metadata about the loaded dataset
func (h *DatasetHandler) GetMeta(c *gin.Context) {
	response.OK(c, "Dataset metadata retrieved successfully", h.dataset.Meta(c.Request.Context()))
}

// Refresh handles re-fetching the upstream payload
func (h *DatasetHandler) Refresh(c *gin.Context) {
	if err := h.dataset.Refresh(c.Request.Context()); err != nil {
		response.Error(c, apperror.NewUpstreamError("Dataset refresh failed"))
		return
	}

	response.OK(c, "Dataset refreshed successfully", h.dataset.Meta(c.Request.Context()))
}
