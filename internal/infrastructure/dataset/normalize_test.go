package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToNumberCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"numeric string", "42.25", 42.25},
		{"int", 7, 7},
		{"missing", nil, 0},
		{"non-numeric string", "abc", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, toNumber(tt.in))
		})
	}
}

func TestToDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2025-03-14", toDate("2025-03-14T09:26:53Z"))
	require.Equal(t, "2025-03-14", toDate("2025-03-14"))
	require.Equal(t, "", toDate("2025-03"))
	require.Equal(t, "", toDate(""))
	require.Equal(t, "", toDate(nil))
	require.Equal(t, "", toDate(20250314))
}

func TestNormalizeDailyRecordDefaults(t *testing.T) {
	t.Parallel()

	row := NormalizeDailyRecord(map[string]any{
		"restaurant_id": float64(5),
		"date":          "2025-04-01T00:00:00",
		"revenue":       "100.5",
		"expenses":      nil,
		"profit":        "not-a-number",
		"food_payment":  float64(30),
	})

	require.EqualValues(t, 5, row.RestaurantID)
	require.Equal(t, "2025-04-01", row.Date)
	require.Equal(t, 100.5, row.Revenue)
	require.Equal(t, 0.0, row.Expenses)
	require.Equal(t, 0.0, row.Profit)
	require.Equal(t, 30.0, row.FoodPayment)
	require.Equal(t, "", row.RestaurantName)
	require.Equal(t, "Other", row.Country)
}

func TestNormalizeDailyRecordShortDate(t *testing.T) {
	t.Parallel()

	row := NormalizeDailyRecord(map[string]any{"restaurant_id": float64(1), "date": "bad"})
	require.Equal(t, "", row.Date)
}

func TestNormalizeRestaurantNameKeys(t *testing.T) {
	t.Parallel()

	primary := normalizeRestaurant(map[string]any{
		"restaurant_id": float64(1), "name": "Alpha", "client_id": float64(9),
	})
	require.Equal(t, "Alpha", primary.Name)
	require.EqualValues(t, 9, primary.ClientID)

	fallback := normalizeRestaurant(map[string]any{
		"restaurant_id": float64(2), "restaurant_name": "Beta",
	})
	require.Equal(t, "Beta", fallback.Name)
}
