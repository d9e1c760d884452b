package repository

import (
	"context"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

// DatasetRepository defines the interface for the in-memory analytics dataset
type DatasetRepository interface {
	// Rows returns the full normalized row set. Callers must not mutate it.
	Rows(ctx context.Context) []entity.DailyRow
	Clients(ctx context.Context) []entity.Client
	Restaurants(ctx context.Context) []entity.Restaurant
	Meta(ctx context.Context) entity.DatasetMeta
	// Refresh re-fetches the upstream payload and swaps in a new dataset.
	// A failed refresh leaves the previously loaded dataset untouched.
	Refresh(ctx context.Context) error
}
