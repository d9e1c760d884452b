package entity

// DailyRow is one normalized restaurant-day observation. Rows are built once
// at load time and never mutated; filtering produces derived slices only.
type DailyRow struct {
	RestaurantID   int64   `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Country        string  `json:"country"`
	Date           string  `json:"date"` // ISO YYYY-MM-DD
	ClientID       int64   `json:"client_id"`
	ClientName     string  `json:"client_name"`
	Orders         float64 `json:"orders"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	Profit         float64 `json:"profit"`

	// Payment sub-categories (revenue split)
	FoodPayment     float64 `json:"food_payment"`
	DrinksPayment   float64 `json:"drinks_payment"`
	OtherPayment    float64 `json:"other_payment"`
	ServicePayment  float64 `json:"service_payment"`
	DeliveryPayment float64 `json:"delivery_payment"`

	// Expense sub-categories
	BillsExpense       float64 `json:"bills_expense"`
	VendorsExpense     float64 `json:"vendors_expense"`
	WageAdvanceExpense float64 `json:"wage_advance_expense"`
	RepairsExpense     float64 `json:"repairs_expense"`
	SundriesExpense    float64 `json:"sundries_expense"`
}

// Client is a reference lookup entry used to populate filter options
type Client struct {
	ID   int64  `json:"client_id"`
	Name string `json:"client_name"`
}

// Restaurant is a reference lookup entry; ClientID is the owning client
type Restaurant struct {
	ID       int64  `json:"restaurant_id"`
	Name     string `json:"name"`
	ClientID int64  `json:"client_id"`
}

// DatasetMeta describes the currently loaded dataset
type DatasetMeta struct {
	Loaded          bool   `json:"loaded"`
	RowCount        int    `json:"row_count"`
	DroppedRows     int    `json:"dropped_rows"`
	ClientCount     int    `json:"client_count"`
	RestaurantCount int    `json:"restaurant_count"`
	LastUpdated     string `json:"last_updated"`
	RefreshedAt     string `json:"refreshed_at"`
}
