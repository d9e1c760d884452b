package dataset

import (
	"math"
	"strconv"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
)

// defaultCountry is substituted when a daily record carries no country value.
const defaultCountry = "Other"

// NormalizeDailyRecord converts one raw daily record into a canonical
// DailyRow. Malformed values are never an error: non-numeric input coerces to
// zero and missing text to its default, silently. A record without at least
// 10 characters of date text normalizes to an empty Date; the caller drops
// such rows from the analysis set.
func NormalizeDailyRecord(raw map[string]any) entity.DailyRow {
	return entity.DailyRow{
		RestaurantID:   toID(raw["restaurant_id"]),
		RestaurantName: toText(raw["restaurant_name"], ""),
		Country:        toText(raw["country"], defaultCountry),
		Date:           toDate(raw["date"]),
		ClientID:       toID(raw["client_id"]),
		ClientName:     toText(raw["client_name"], ""),
		Orders:         toNumber(raw["orders"]),
		Revenue:        toNumber(raw["revenue"]),
		Expenses:       toNumber(raw["expenses"]),
		Profit:         toNumber(raw["profit"]),

		FoodPayment:     toNumber(raw["food_payment"]),
		DrinksPayment:   toNumber(raw["drinks_payment"]),
		OtherPayment:    toNumber(raw["other_payment"]),
		ServicePayment:  toNumber(raw["service_payment"]),
		DeliveryPayment: toNumber(raw["delivery_payment"]),

		BillsExpense:       toNumber(raw["bills_expense"]),
		VendorsExpense:     toNumber(raw["vendors_expense"]),
		WageAdvanceExpense: toNumber(raw["wage_advance_expense"]),
		RepairsExpense:     toNumber(raw["repairs_expense"]),
		SundriesExpense:    toNumber(raw["sundries_expense"]),
	}
}

// normalizeClient converts a raw clients_list entry into a lookup row.
func normalizeClient(raw map[string]any) entity.Client {
	return entity.Client{
		ID:   toID(raw["client_id"]),
		Name: toText(raw["client_name"], ""),
	}
}

// normalizeRestaurant converts a raw restaurants_list entry into a lookup
// row. The upstream feed has shipped the label under both "name" and
// "restaurant_name"; either key is accepted.
func normalizeRestaurant(raw map[string]any) entity.Restaurant {
	name := toText(raw["name"], "")
	if name == "" {
		name = toText(raw["restaurant_name"], "")
	}
	return entity.Restaurant{
		ID:       toID(raw["restaurant_id"]),
		Name:     name,
		ClientID: toID(raw["client_id"]),
	}
}

// toNumber coerces an arbitrary value to a finite float64. Anything that is
// missing, non-numeric, NaN or infinite becomes zero.
func toNumber(v any) float64 {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// toID coerces an arbitrary value to an integer identifier.
func toID(v any) int64 {
	return int64(toNumber(v))
}

// toText coerces an arbitrary value to text, substituting def when the value
// is absent or not a string.
func toText(v any, def string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// toDate truncates a timestamp-ish string to its ISO date prefix. Values with
// fewer than 10 characters yield an empty date.
func toDate(v any) string {
	s, _ := v.(string)
	if len(s) < 10 {
		return ""
	}
	return s[:10]
}
