package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rosboard/ros-analytics-api/internal/application/service"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/dto/response"
)

// OptionsHandler handles filter-option HTTP requests
type OptionsHandler struct {
	optionsService *service.OptionsService
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(optionsService *service.OptionsService) *OptionsHandler {
	return &OptionsHandler{optionsService: optionsService}
}

// ListClients handles listing client filter options
func (h *OptionsHandler) ListClients(c *gin.Context) {
	opts, err := h.optionsService.ClientOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client options retrieved successfully", opts)
}

// ListRestaurants handles listing restaurant filter options, optionally
// scoped to a client
func (h *OptionsHandler) ListRestaurants(c *gin.Context) {
	clientID, err := queryID(c, "client_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	opts, err := h.optionsService.RestaurantOptions(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurant options retrieved successfully", opts)
}
