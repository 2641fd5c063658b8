package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/config"
	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/models/reports"
)

func monthlySeries(startYear, startMonth int, revenues []float64, services []int) []models.MonthlyAggregate {
	history := make([]models.MonthlyAggregate, len(revenues))
	year, month := startYear, startMonth
	for i := range revenues {
		history[i] = models.MonthlyAggregate{
			Year:     year,
			Month:    month,
			Revenue:  decimal.NewFromFloat(revenues[i]),
			Services: services[i],
		}
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return history
}

func TestGetRevenueForecast_EmptyHistory(t *testing.T) {
	result := reports.GetRevenueForecast(nil, config.DefaultForecastConfig())

	if result.Method != models.ForecastMethodInsufficientData {
		t.Fatalf("expected insufficient_data, got %s", result.Method)
	}
	if result.Confidence != models.ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", result.Confidence)
	}
	if !result.PredictedRevenue.IsZero() || result.PredictedServices != 0 {
		t.Fatalf("empty history should predict zero, got %+v", result)
	}
}

func TestGetRevenueForecast_SinglePoint(t *testing.T) {
	history := monthlySeries(2026, 12, []float64{42000}, []int{14})
	result := reports.GetRevenueForecast(history, config.DefaultForecastConfig())

	if result.Method != models.ForecastMethodInsufficientData {
		t.Fatalf("expected insufficient_data, got %s", result.Method)
	}
	if result.Confidence != models.ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", result.Confidence)
	}
	if !result.PredictedRevenue.Equal(decimal.NewFromInt(42000)) {
		t.Fatalf("best-effort projection should echo last value, got %s", result.PredictedRevenue)
	}
	if result.PredictedServices != 14 {
		t.Fatalf("predicted services expected 14, got %d", result.PredictedServices)
	}
	if result.ForecastYear != 2027 || result.ForecastMonth != 1 {
		t.Fatalf("forecast period expected 2027-01, got %d-%02d", result.ForecastYear, result.ForecastMonth)
	}
	if len(result.HistoricalData) != 1 {
		t.Fatalf("historical data must be echoed back, got %d points", len(result.HistoricalData))
	}
}

func TestGetRevenueForecast_LinearSeriesBlend(t *testing.T) {
	// Perfectly linear revenue: regression extrapolates to 700 exactly,
	// the weighted moving average is 9100/21, blend is 60/40.
	history := monthlySeries(2026, 1,
		[]float64{100, 200, 300, 400, 500, 600},
		[]int{1, 2, 3, 4, 5, 6})
	result := reports.GetRevenueForecast(history, config.DefaultForecastConfig())

	if result.Method != models.ForecastMethodBlended {
		t.Fatalf("expected blended method, got %s", result.Method)
	}
	if !result.RegressionForecast.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("regression forecast expected 700, got %s", result.RegressionForecast)
	}
	wantWMA := decimal.NewFromFloat(9100.0 / 21.0).Round(2)
	if !result.WeightedAvgForecast.Equal(wantWMA) {
		t.Fatalf("weighted avg forecast expected %s, got %s", wantWMA, result.WeightedAvgForecast)
	}
	wantBlend := decimal.NewFromFloat(0.6*700 + 0.4*(9100.0/21.0)).Round(2)
	if !result.PredictedRevenue.Equal(wantBlend) {
		t.Fatalf("blended forecast expected %s, got %s", wantBlend, result.PredictedRevenue)
	}
	if result.Trend != models.TrendGrowing {
		t.Fatalf("strictly increasing series should trend growing, got %s", result.Trend)
	}
	// Services blend: 0.6*7 + 0.4*(91/21) rounds to 6.
	if result.PredictedServices != 6 {
		t.Fatalf("linear service series should forecast 6, got %d", result.PredictedServices)
	}
}

func TestGetRevenueForecast_FlatSeries(t *testing.T) {
	history := monthlySeries(2026, 1,
		[]float64{500, 500, 500, 500, 500, 500},
		[]int{10, 10, 10, 10, 10, 10})
	result := reports.GetRevenueForecast(history, config.DefaultForecastConfig())

	if !result.PredictedRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("flat series should forecast 500, got %s", result.PredictedRevenue)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Fatalf("zero-variance history should be high confidence, got %s", result.Confidence)
	}
	if result.Trend != models.TrendStable {
		t.Fatalf("flat series should trend stable, got %s", result.Trend)
	}
	if result.PredictedServices != 10 {
		t.Fatalf("flat service series should forecast 10, got %d", result.PredictedServices)
	}
}

func TestGetRevenueForecast_ConfidenceMonotoneInDispersion(t *testing.T) {
	services := []int{10, 10, 10, 10, 10, 10}
	// Same mean (1000), strictly increasing dispersion.
	seriesByNoise := [][]float64{
		{1000, 1000, 1000, 1000, 1000, 1000},
		{950, 1050, 950, 1050, 950, 1050},
		{700, 1300, 700, 1300, 700, 1300},
		{100, 1900, 100, 1900, 100, 1900},
	}

	cfg := config.DefaultForecastConfig()
	prevRank := models.ConfidenceHigh.Rank()
	for i, revenues := range seriesByNoise {
		result := reports.GetRevenueForecast(monthlySeries(2026, 1, revenues, services), cfg)
		rank := result.Confidence.Rank()
		if rank > prevRank {
			t.Fatalf("series %d has more dispersion but higher confidence (%s)", i, result.Confidence)
		}
		prevRank = rank
	}
}

func TestGetRevenueForecast_TrendTotality(t *testing.T) {
	services := []int{1, 1}
	cases := [][]float64{
		{0, 0},
		{100, 100},
		{100, 200},
		{200, 100},
		{0, 100},
		{100, 0},
		{100, 104}, // inside the stable band
	}
	for _, revenues := range cases {
		result := reports.GetRevenueForecast(monthlySeries(2026, 1, revenues, services), config.DefaultForecastConfig())
		switch result.Trend {
		case models.TrendGrowing, models.TrendDeclining, models.TrendStable:
		default:
			t.Fatalf("series %v produced invalid trend %q", revenues, result.Trend)
		}
	}
}

func TestGetRevenueForecast_DecliningSeries(t *testing.T) {
	history := monthlySeries(2026, 1,
		[]float64{600, 500, 400, 300, 200, 100},
		[]int{6, 5, 4, 3, 2, 1})
	result := reports.GetRevenueForecast(history, config.DefaultForecastConfig())

	if result.Trend != models.TrendDeclining {
		t.Fatalf("strictly decreasing series should trend declining, got %s", result.Trend)
	}
	// Regression would extrapolate to 0; the forecast must never go negative.
	if result.PredictedRevenue.IsNegative() {
		t.Fatalf("forecast must be non-negative, got %s", result.PredictedRevenue)
	}
}

func TestGetRevenueForecast_WindowTruncation(t *testing.T) {
	// 12 months of noise followed by a flat recent window: only the trailing
	// 6 months should feed the models.
	revenues := []float64{9000, 50, 8000, 100, 7000, 150, 500, 500, 500, 500, 500, 500}
	services := make([]int, len(revenues))
	for i := range services {
		services[i] = 5
	}
	result := reports.GetRevenueForecast(monthlySeries(2025, 8, revenues, services), config.DefaultForecastConfig())

	if !result.PredictedRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("trailing flat window should forecast 500, got %s", result.PredictedRevenue)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Fatalf("trailing flat window should be high confidence, got %s", result.Confidence)
	}
	if result.ForecastYear != 2026 || result.ForecastMonth != 8 {
		t.Fatalf("forecast period expected 2026-08, got %d-%02d", result.ForecastYear, result.ForecastMonth)
	}
}

func TestGetRevenueForecast_ServicesForecastIndependent(t *testing.T) {
	// Revenue flat, services growing: the two predictions must not be
	// derived from each other.
	history := monthlySeries(2026, 1,
		[]float64{1000, 1000, 1000, 1000, 1000, 1000},
		[]int{1, 2, 3, 4, 5, 6})
	result := reports.GetRevenueForecast(history, config.DefaultForecastConfig())

	if !result.PredictedRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("flat revenue should forecast 1000, got %s", result.PredictedRevenue)
	}
	if result.PredictedServices != 6 {
		t.Fatalf("growing service series should forecast 6, got %d", result.PredictedServices)
	}
}
