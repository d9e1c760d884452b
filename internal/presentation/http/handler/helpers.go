package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
	"github.com/rosboard/ros-analytics-api/pkg/apperror"
)

// bindCriteria builds FilterCriteria from the request query. Absent or empty
// parameters leave the corresponding constraint inactive; a non-numeric id is
// a client error.
func bindCriteria(c *gin.Context) (entity.FilterCriteria, error) {
	var criteria entity.FilterCriteria

	clientID, err := queryID(c, "client_id")
	if err != nil {
		return criteria, err
	}
	restaurantID, err := queryID(c, "restaurant_id")
	if err != nil {
		return criteria, err
	}

	criteria.ClientID = clientID
	criteria.RestaurantID = restaurantID
	criteria.DateFrom = c.Query("from")
	criteria.DateTo = c.Query("to")
	return criteria, nil
}

func queryID(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return &id, nil
}
