package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
	"github.com/rosboard/ros-analytics-api/internal/domain/repository"
	"github.com/rosboard/ros-analytics-api/pkg/apperror"
)

// reconcileTolerance is the absolute tolerance used when checking that a
// row's profit matches revenue minus expenses. It absorbs rounding noise in
// the upstream feed; it is not a percentage.
const reconcileTolerance = 0.01

// topRestaurantLimit caps the revenue ranking handed to presentation.
const topRestaurantLimit = 10

// DashboardService computes aggregate dashboard statistics
type DashboardService struct {
	dataset repository.DatasetRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dataset repository.DatasetRepository) *DashboardService {
	return &DashboardService{dataset: dataset}
}

// RevenueBreakdown splits total revenue across the five payment categories
type RevenueBreakdown struct {
	Food     float64 `json:"food"`
	Drinks   float64 `json:"drinks"`
	Other    float64 `json:"other"`
	Service  float64 `json:"service"`
	Delivery float64 `json:"delivery"`
}

// ExpenseBreakdown splits total expenses across the five expense categories
type ExpenseBreakdown struct {
	Bills       float64 `json:"bills"`
	Vendors     float64 `json:"vendors"`
	WageAdvance float64 `json:"wage_advance"`
	Repairs     float64 `json:"repairs"`
	Sundries    float64 `json:"sundries"`
}

// RestaurantRollup is the per-restaurant aggregate used for the revenue ranking
type RestaurantRollup struct {
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Orders       float64 `json:"orders"`
	Revenue      float64 `json:"revenue"`
	Expenses     float64 `json:"expenses"`
	Profit       float64 `json:"profit"`
}

// GeoTally counts distinct restaurants per geographic bucket
type GeoTally struct {
	UK    int `json:"uk"`
	India int `json:"india"`
	Other int `json:"other"`
}

// AggregateSnapshot is the full set of statistics derived from one filtered
// row set. It is recomputed from scratch on every request; nothing is updated
// incrementally.
type AggregateSnapshot struct {
	RowCount           int                `json:"row_count"`
	TotalRevenue       float64            `json:"total_revenue"`
	TotalExpenses      float64            `json:"total_expenses"`
	TotalOrders        float64            `json:"total_orders"`
	NetProfit          float64            `json:"net_profit"`
	ReconciliationRate float64            `json:"reconciliation_rate"`
	ProfitMargin       float64            `json:"profit_margin"`
	RevenueBreakdown   RevenueBreakdown   `json:"revenue_breakdown"`
	ExpenseBreakdown   ExpenseBreakdown   `json:"expense_breakdown"`
	TopRestaurants     []RestaurantRollup `json:"top_restaurants"`
	Geography          GeoTally           `json:"geography"`
}

// GetSnapshot filters the dataset by the (sanitized) criteria and aggregates
// the result. Returns ErrDatasetUnavailable until an upstream load succeeds.
func (s *DashboardService) GetSnapshot(ctx context.Context, criteria entity.FilterCriteria) (*AggregateSnapshot, error) {
	rows, err := s.filteredRows(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return Aggregate(rows), nil
}

func (s *DashboardService) filteredRows(ctx context.Context, criteria entity.FilterCriteria) ([]entity.DailyRow, error) {
	if !s.dataset.Meta(ctx).Loaded {
		return nil, apperror.ErrDatasetUnavailable
	}
	criteria = criteria.Sanitized(s.dataset.Restaurants(ctx))
	return entity.FilterRows(s.dataset.Rows(ctx), criteria), nil
}

// Aggregate reduces a filtered row set into an AggregateSnapshot in a single
// pass. An empty input yields an all-zero snapshot with an empty ranking.
func Aggregate(rows []entity.DailyRow) *AggregateSnapshot {
	snap := &AggregateSnapshot{
		RowCount:       len(rows),
		TopRestaurants: []RestaurantRollup{},
	}

	reconciled := 0
	rollups := make(map[int64]*RestaurantRollup)
	rollupOrder := make([]int64, 0)
	countries := make(map[string]map[int64]struct{})

	for _, row := range rows {
		snap.TotalRevenue += row.Revenue
		snap.TotalExpenses += row.Expenses
		snap.TotalOrders += row.Orders
		snap.NetProfit += row.Profit

		snap.RevenueBreakdown.Food += row.FoodPayment
		snap.RevenueBreakdown.Drinks += row.DrinksPayment
		snap.RevenueBreakdown.Other += row.OtherPayment
		snap.RevenueBreakdown.Service += row.ServicePayment
		snap.RevenueBreakdown.Delivery += row.DeliveryPayment

		snap.ExpenseBreakdown.Bills += row.BillsExpense
		snap.ExpenseBreakdown.Vendors += row.VendorsExpense
		snap.ExpenseBreakdown.WageAdvance += row.WageAdvanceExpense
		snap.ExpenseBreakdown.Repairs += row.RepairsExpense
		snap.ExpenseBreakdown.Sundries += row.SundriesExpense

		if math.Abs((row.Revenue-row.Expenses)-row.Profit) <= reconcileTolerance {
			reconciled++
		}

		rollup, ok := rollups[row.RestaurantID]
		if !ok {
			name := row.RestaurantName
			if name == "" {
				name = fmt.Sprintf("Restaurant %d", row.RestaurantID)
			}
			rollup = &RestaurantRollup{RestaurantID: row.RestaurantID, Name: name}
			rollups[row.RestaurantID] = rollup
			rollupOrder = append(rollupOrder, row.RestaurantID)
		}
		rollup.Orders += row.Orders
		rollup.Revenue += row.Revenue
		rollup.Expenses += row.Expenses
		rollup.Profit += row.Profit

		country := strings.ToUpper(row.Country)
		if countries[country] == nil {
			countries[country] = make(map[int64]struct{})
		}
		countries[country][row.RestaurantID] = struct{}{}
	}

	if snap.RowCount > 0 {
		snap.ReconciliationRate = float64(reconciled) / float64(snap.RowCount) * 100
	}
	if snap.TotalRevenue != 0 {
		snap.ProfitMargin = snap.NetProfit / snap.TotalRevenue * 100
	}

	// Rank over first-seen insertion order with a stable sort so revenue
	// ties keep their original order.
	ranked := make([]RestaurantRollup, 0, len(rollupOrder))
	for _, id := range rollupOrder {
		ranked = append(ranked, *rollups[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > topRestaurantLimit {
		ranked = ranked[:topRestaurantLimit]
	}
	snap.TopRestaurants = ranked

	for country, ids := range countries {
		switch country {
		case "UK":
			snap.Geography.UK += len(ids)
		case "INDIA":
			snap.Geography.India += len(ids)
		default:
			snap.Geography.Other += len(ids)
		}
	}

	return snap
}
