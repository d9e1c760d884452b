package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
	"github.com/rosboard/ros-analytics-api/pkg/apperror"
)

func optionsFixture() *stubDataset {
	return &stubDataset{
		loaded: true,
		clients: []entity.Client{
			{ID: 2, Name: "zenith Group"},
			{ID: 1, Name: "Acme Hospitality"},
			{ID: 3, Name: "Brunch Co"},
		},
		restaurants: []entity.Restaurant{
			{ID: 20, Name: "delta Diner", ClientID: 2},
			{ID: 10, Name: "Alpha Kitchen", ClientID: 1},
			{ID: 11, Name: "Bistro Eleven", ClientID: 1},
		},
	}
}

func TestClientOptionsSortedWithAll(t *testing.T) {
	t.Parallel()

	svc := NewOptionsService(optionsFixture())
	opts, err := svc.ClientOptions(context.Background())
	require.NoError(t, err)

	require.Len(t, opts, 4)
	require.Equal(t, Option{Value: "", Label: "All Clients"}, opts[0])
	// Case-insensitive label order.
	require.Equal(t, "Acme Hospitality", opts[1].Label)
	require.Equal(t, "Brunch Co", opts[2].Label)
	require.Equal(t, "zenith Group", opts[3].Label)
	require.Equal(t, "1", opts[1].Value)
}

func TestRestaurantOptionsScopedToClient(t *testing.T) {
	t.Parallel()

	svc := NewOptionsService(optionsFixture())

	all, err := svc.RestaurantOptions(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, Option{Value: "", Label: "All Restaurants"}, all[0])

	scoped, err := svc.RestaurantOptions(context.Background(), ptr(1))
	require.NoError(t, err)
	require.Len(t, scoped, 3)
	require.Equal(t, "Alpha Kitchen", scoped[1].Label)
	require.Equal(t, "Bistro Eleven", scoped[2].Label)
}

func TestOptionsUnavailableUntilLoaded(t *testing.T) {
	t.Parallel()

	svc := NewOptionsService(&stubDataset{})

	_, err := svc.ClientOptions(context.Background())
	require.ErrorIs(t, err, apperror.ErrDatasetUnavailable)

	_, err = svc.RestaurantOptions(context.Background(), nil)
	require.ErrorIs(t, err, apperror.ErrDatasetUnavailable)
}
