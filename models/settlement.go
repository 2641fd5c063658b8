package models

import (
	"github.com/shopspring/decimal"
)

// PropertySettlement is the computed monthly/period reconciliation for one
// property. It is never persisted; reports recompute it from service entries
// on every query.
//
// Hotel-side pointer fields are nil for owned properties: there is no
// counterparty, so "settlement" is not applicable rather than zero.
type PropertySettlement struct {
	PropertyID    string          `json:"property_id"`
	PropertyName  string          `json:"property_name"`
	OwnershipType OwnershipType   `json:"ownership_type"`
	SharePercent  decimal.Decimal `json:"revenue_share_percentage"`
	ServiceCount  int             `json:"service_count"`

	BaseRevenue  decimal.Decimal `json:"base_revenue"`
	GSTCollected decimal.Decimal `json:"gst_collected"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`

	HotelBaseShare      *decimal.Decimal `json:"hotel_base_share"`
	HotelGSTLiability   *decimal.Decimal `json:"hotel_gst_liability"`
	HotelExpectedTotal  *decimal.Decimal `json:"hotel_expected_total"`
	HotelCollectedGross decimal.Decimal  `json:"hotel_collected_gross"`
	HotelSettlement     *decimal.Decimal `json:"hotel_settlement"`

	NirvaanaBaseShare      decimal.Decimal  `json:"nirvaana_base_share"`
	NirvaanaGSTLiability   decimal.Decimal  `json:"nirvaana_gst_liability"`
	NirvaanaExpectedTotal  decimal.Decimal  `json:"nirvaana_expected_total"`
	NirvaanaCollectedGross decimal.Decimal  `json:"nirvaana_collected_gross"`
	NirvaanaSettlement     *decimal.Decimal `json:"nirvaana_settlement"`
}

// PortfolioSummary aggregates per-property settlements across the whole
// portfolio. Totals are sums of the per-property results, never a single
// settlement run over pooled transactions: share terms differ per property.
//
// NetProfit is own base share minus expenses. GST is excluded by business
// rule; it is collected for the tax authority, not earned.
type PortfolioSummary struct {
	PropertyCount int `json:"property_count"`
	ServiceCount  int `json:"service_count"`

	BaseRevenue  decimal.Decimal `json:"base_revenue"`
	GSTCollected decimal.Decimal `json:"gst_collected"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`

	HotelShare decimal.Decimal `json:"hotel_share"`
	OwnShare   decimal.Decimal `json:"own_share"`

	HotelCollectedGross    decimal.Decimal `json:"hotel_collected_gross"`
	NirvaanaCollectedGross decimal.Decimal `json:"nirvaana_collected_gross"`

	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

type SettlementReport struct {
	Properties []*PropertySettlement `json:"properties"`
	Portfolio  *PortfolioSummary     `json:"portfolio"`
}

// MonthlyAggregate is one point of the revenue time series fed to the
// forecast engine. Revenue is base revenue (tax-exclusive).
type MonthlyAggregate struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Services int             `json:"services"`
}

type ForecastResult struct {
	ForecastMonth int `json:"forecast_month"`
	ForecastYear  int `json:"forecast_year"`

	PredictedRevenue  decimal.Decimal `json:"predicted_revenue"`
	PredictedServices int             `json:"predicted_services"`

	Confidence ConfidenceLevel `json:"confidence"`
	Trend      TrendDirection  `json:"trend"`
	Method     ForecastMethod  `json:"method"`

	WeightedAvgForecast decimal.Decimal `json:"weighted_avg_forecast"`
	RegressionForecast  decimal.Decimal `json:"regression_forecast"`

	HistoricalData []MonthlyAggregate `json:"historical_data"`
}

// DashboardReport is the admin landing-page summary over a service-entry
// slice (optionally pre-filtered by property or date by the caller).
type DashboardReport struct {
	TotalBaseSales     decimal.Decimal `json:"total_base_sales"`
	TotalGST           decimal.Decimal `json:"total_gst"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	HotelReceived      decimal.Decimal `json:"hotel_received"`
	NirvaanaReceived   decimal.Decimal `json:"nirvaana_received"`
	CustomerCount      int             `json:"customer_count"`
	MostPopularTherapy string          `json:"most_popular_therapy"`
	TotalServices      int             `json:"total_services"`
}

// IncentiveResult is a therapist's monthly incentive position: sales above
// 90% of target earn 5% of the excess.
type IncentiveResult struct {
	Target             decimal.Decimal `json:"target"`
	Threshold          decimal.Decimal `json:"threshold"`
	ActualSales        decimal.Decimal `json:"actual_sales"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	ExcessAmount       decimal.Decimal `json:"excess_amount"`
	IncentiveEarned    decimal.Decimal `json:"incentive_earned"`
}
