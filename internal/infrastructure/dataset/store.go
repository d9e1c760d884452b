package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

// Store holds the normalized dataset in memory. Reads hand out the current
// immutable snapshot; Refresh builds a complete replacement and swaps it in
// under the write lock, so readers never observe a partial dataset.
type Store struct {
	source Source
	log    *logrus.Logger

	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	rows        []entity.DailyRow
	clients     []entity.Client
	restaurants []entity.Restaurant
	meta        entity.DatasetMeta
}

// NewStore creates a new dataset store backed by the given source
func NewStore(source Source, log *logrus.Logger) *Store {
	return &Store{source: source, log: log}
}

// Refresh fetches the upstream payload, normalizes it and swaps in the new
// dataset. On failure the previously loaded dataset (if any) stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	payload, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.WithError(err).Error("dataset refresh failed")
		return err
	}

	rows := make([]entity.DailyRow, 0, len(payload.PerRestaurantDaily))
	dropped := 0
	for _, raw := range payload.PerRestaurantDaily {
		row := NormalizeDailyRecord(raw)
		// Rows without a usable date carry no analytical value.
		if row.Date == "" {
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	clients := make([]entity.Client, 0, len(payload.ClientsList))
	for _, raw := range payload.ClientsList {
		clients = append(clients, normalizeClient(raw))
	}
	restaurants := make([]entity.Restaurant, 0, len(payload.RestaurantsList))
	for _, raw := range payload.RestaurantsList {
		restaurants = append(restaurants, normalizeRestaurant(raw))
	}

	snap := &snapshot{
		rows:        rows,
		clients:     clients,
		restaurants: restaurants,
		meta: entity.DatasetMeta{
			Loaded:          true,
			RowCount:        len(rows),
			DroppedRows:     dropped,
			ClientCount:     len(clients),
			RestaurantCount: len(restaurants),
			LastUpdated:     payload.LastUpdated,
			RefreshedAt:     time.Now().UTC().Format(time.RFC3339),
		},
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"rows":        len(rows),
		"dropped":     dropped,
		"clients":     len(clients),
		"restaurants": len(restaurants),
	}).Info("dataset refreshed")

	return nil
}

// Rows returns the normalized row set, or nil when no dataset is loaded
func (s *Store) Rows(ctx context.Context) []entity.DailyRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.rows
}

// Clients returns the client lookup list
func (s *Store) Clients(ctx context.Context) []entity.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.clients
}

// Restaurants returns the restaurant lookup list
func (s *Store) Restaurants(ctx context.Context) []entity.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.restaurants
}

// Meta returns metadata about the currently loaded dataset
func (s *Store) Meta(ctx context.Context) entity.DatasetMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return entity.DatasetMeta{}
	}
	return s.snap.meta
}
