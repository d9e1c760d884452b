package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/rosboard/ros-analytics-api/internal/domain/repository"
	"github.com/rosboard/ros-analytics-api/pkg/apperror"
)

// Option is one selectable filter entry. The synthetic "All" option carries
// an empty value.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsService produces the client and restaurant filter option lists
type OptionsService struct {
	dataset repository.DatasetRepository
}

// NewOptionsService creates a new options service
func NewOptionsService(dataset repository.DatasetRepository) *OptionsService {
	return &OptionsService{dataset: dataset}
}

// ClientOptions returns the client selector entries, sorted case-insensitively
// by label with the "All" option prepended
func (s *OptionsService) ClientOptions(ctx context.Context) ([]Option, error) {
	if !s.dataset.Meta(ctx).Loaded {
		return nil, apperror.ErrDatasetUnavailable
	}

	clients := s.dataset.Clients(ctx)
	opts := make([]Option, 0, len(clients)+1)
	for _, c := range clients {
		opts = append(opts, Option{
			Value: strconv.FormatInt(c.ID, 10),
			Label: c.Name,
		})
	}
	sortOptions(opts)

	return append([]Option{{Value: "", Label: "All Clients"}}, opts...), nil
}

// RestaurantOptions returns the restaurant selector entries, scoped to the
// given client when one is selected
func (s *OptionsService) RestaurantOptions(ctx context.Context, clientID *int64) ([]Option, error) {
	if !s.dataset.Meta(ctx).Loaded {
		return nil, apperror.ErrDatasetUnavailable
	}

	restaurants := s.dataset.Restaurants(ctx)
	opts := make([]Option, 0, len(restaurants)+1)
	for _, r := range restaurants {
		if clientID != nil && r.ClientID != *clientID {
			continue
		}
		opts = append(opts, Option{
			Value: strconv.FormatInt(r.ID, 10),
			Label: r.Name,
		})
	}
	sortOptions(opts)

	return append([]Option{{Value: "", Label: "All Restaurants"}}, opts...), nil
}

func sortOptions(opts []Option) {
	sort.SliceStable(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Label) < strings.ToLower(opts[j].Label)
	})
}
