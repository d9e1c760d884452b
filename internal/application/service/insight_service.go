package service

import (
	"context"
	"fmt"

	"github.com/rosboard/ros-analytics-api/internal/domain/entity"
	"github.com/rosboard/ros-analytics-api/pkg/utils"
)

// Tone classifies a recommendation for presentation
type Tone string

// Recommendation tones
const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneInfo     Tone = "info"
)

// Recommendation is one tone-tagged narrative insight. Title and Detail are
// HTML-escaped and safe to inject into rendered output as-is.
type Recommendation struct {
	Tone   Tone   `json:"tone"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// DerivedMetrics are the secondary ratios computed alongside the rules
type DerivedMetrics struct {
	AverageOrderValue  float64 `json:"average_order_value"`
	ExpenseRatio       float64 `json:"expense_ratio"`
	TopRestaurantShare float64 `json:"top_restaurant_share"`
}

// InsightReport is the insight engine output for one filtered snapshot
type InsightReport struct {
	Metrics         DerivedMetrics   `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
}

// InsightService derives rule-based recommendations from dashboard snapshots
type InsightService struct {
	dashboard *DashboardService
}

// NewInsightService creates a new insight service
func NewInsightService(dashboard *DashboardService) *InsightService {
	return &InsightService{dashboard: dashboard}
}

// GetInsights aggregates the filtered dataset and evaluates the insight rules
func (s *InsightService) GetInsights(ctx context.Context, criteria entity.FilterCriteria) (*InsightReport, error) {
	snap, err := s.dashboard.GetSnapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return BuildInsights(snap), nil
}

// BuildInsights evaluates the fixed threshold rules against a snapshot. Each
// rule contributes exactly one recommendation, in fixed order. An empty
// snapshot suppresses every rule and emits a single empty-state notice.
func BuildInsights(snap *AggregateSnapshot) *InsightReport {
	report := &InsightReport{
		Metrics:         deriveMetrics(snap),
		Recommendations: []Recommendation{},
	}

	if snap.RowCount == 0 {
		report.Recommendations = append(report.Recommendations, recommend(ToneInfo,
			"No data for the selected filters",
			"The current client, restaurant and date selection matches no rows. Widen the filters to see insights."))
		return report
	}

	// Rule 1: reconciliation discipline
	if snap.ReconciliationRate < 95 {
		report.Recommendations = append(report.Recommendations, recommend(ToneWarning,
			"Improve reconciliation discipline",
			fmt.Sprintf("Only %.1f%% of rows reconcile within tolerance. Review expense and payment capture at the source.", snap.ReconciliationRate)))
	} else {
		report.Recommendations = append(report.Recommendations, recommend(TonePositive,
			"Reconciliation quality is stable",
			fmt.Sprintf("%.1f%% of rows reconcile within tolerance.", snap.ReconciliationRate)))
	}

	// Rule 2: expense pressure
	if report.Metrics.ExpenseRatio > 65 {
		report.Recommendations = append(report.Recommendations, recommend(ToneWarning,
			"Expenses are pressuring margins",
			fmt.Sprintf("Expenses consume %.1f%% of revenue. Audit vendor and bills spend first.", report.Metrics.ExpenseRatio)))
	} else {
		report.Recommendations = append(report.Recommendations, recommend(TonePositive,
			"Cost profile is healthy",
			fmt.Sprintf("Expenses consume %.1f%% of revenue.", report.Metrics.ExpenseRatio)))
	}

	// Rule 3: revenue concentration
	if report.Metrics.TopRestaurantShare > 35 {
		top := snap.TopRestaurants[0]
		report.Recommendations = append(report.Recommendations, recommend(ToneInfo,
			"Revenue concentration risk",
			fmt.Sprintf("%s contributes %.1f%% of revenue in this view. A dip there moves the whole book.", top.Name, report.Metrics.TopRestaurantShare)))
	} else {
		report.Recommendations = append(report.Recommendations, recommend(ToneInfo,
			"Revenue spread is balanced",
			fmt.Sprintf("The top restaurant contributes %.1f%% of revenue.", report.Metrics.TopRestaurantShare)))
	}

	// Rule 4: profit margin bands. Exactly 20 and exactly 40 both fall into
	// the moderate band.
	switch {
	case snap.ProfitMargin < 20:
		report.Recommendations = append(report.Recommendations, recommend(ToneWarning,
			"Margin needs intervention",
			fmt.Sprintf("Net margin is %.1f%%. Pricing or cost structure needs attention.", snap.ProfitMargin)))
	case snap.ProfitMargin > 40:
		report.Recommendations = append(report.Recommendations, recommend(TonePositive,
			"Strong profitability window",
			fmt.Sprintf("Net margin is %.1f%%. Consider reinvesting while conditions hold.", snap.ProfitMargin)))
	default:
		report.Recommendations = append(report.Recommendations, recommend(ToneInfo,
			"Margins are moderate",
			fmt.Sprintf("Net margin is %.1f%%.", snap.ProfitMargin)))
	}

	return report
}

func deriveMetrics(snap *AggregateSnapshot) DerivedMetrics {
	var m DerivedMetrics
	if snap.TotalOrders != 0 {
		m.AverageOrderValue = snap.TotalRevenue / snap.TotalOrders
	}
	if snap.TotalRevenue != 0 {
		m.ExpenseRatio = snap.TotalExpenses / snap.TotalRevenue * 100
		if len(snap.TopRestaurants) > 0 {
			m.TopRestaurantShare = snap.TopRestaurants[0].Revenue / snap.TotalRevenue * 100
		}
	}
	return m
}

// recommend builds an entry, escaping both text fields so data-derived names
// cannot inject markup downstream.
func recommend(tone Tone, title, detail string) Recommendation {
	return Recommendation{
		Tone:   tone,
		Title:  utils.EscapeHTML(title),
		Detail: utils.EscapeHTML(detail),
	}
}
