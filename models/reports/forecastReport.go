package reports

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/config"
	"github.com/nirvaanawellness/spa_backend/models"
)

// GetRevenueForecast predicts next-month revenue and service count from a
// trailing monthly history (oldest first). Two component models run over
// the window — a recency-weighted moving average and an ordinary
// least-squares fit against month index — and the prediction blends them
// per cfg (default 60% regression, 40% weighted average). Revenue and
// service count are forecast independently, each through its own blend.
//
// Fewer than cfg.MinHistory points is not an error: the result is labeled
// method=insufficient_data with low confidence and a last-observed-value
// projection. Callers are expected to surface that label as a disclaimer.
func GetRevenueForecast(history []models.MonthlyAggregate, cfg config.ForecastConfig) *models.ForecastResult {
	window := history
	if cfg.WindowMonths > 0 && len(window) > cfg.WindowMonths {
		window = window[len(window)-cfg.WindowMonths:]
	}

	result := &models.ForecastResult{
		PredictedRevenue:    decimal.Zero,
		WeightedAvgForecast: decimal.Zero,
		RegressionForecast:  decimal.Zero,
		Confidence:          models.ConfidenceLow,
		Trend:               models.TrendStable,
		Method:              models.ForecastMethodInsufficientData,
		HistoricalData:      history,
	}
	if len(window) > 0 {
		last := window[len(window)-1]
		result.ForecastYear, result.ForecastMonth = nextMonth(last.Year, last.Month)
	}

	if len(window) < cfg.MinHistory {
		if len(window) > 0 {
			last := window[len(window)-1]
			result.PredictedRevenue = last.Revenue.Round(2)
			result.PredictedServices = last.Services
			result.WeightedAvgForecast = result.PredictedRevenue
			result.RegressionForecast = result.PredictedRevenue
		}
		return result
	}

	revenues := make([]float64, len(window))
	services := make([]float64, len(window))
	for i, point := range window {
		revenues[i] = point.Revenue.InexactFloat64()
		services[i] = float64(point.Services)
	}

	wmaRevenue := weightedMovingAverage(revenues)
	regRevenue := regressionForecast(revenues)
	wmaServices := weightedMovingAverage(services)
	regServices := regressionForecast(services)

	blendedRevenue := cfg.RegressionWeight*regRevenue + cfg.WeightedAvgWeight*wmaRevenue
	blendedServices := cfg.RegressionWeight*regServices + cfg.WeightedAvgWeight*wmaServices

	result.Method = models.ForecastMethodBlended
	result.PredictedRevenue = decimal.NewFromFloat(clampNonNegative(blendedRevenue)).Round(2)
	result.PredictedServices = int(math.Round(clampNonNegative(blendedServices)))
	result.WeightedAvgForecast = decimal.NewFromFloat(clampNonNegative(wmaRevenue)).Round(2)
	result.RegressionForecast = decimal.NewFromFloat(clampNonNegative(regRevenue)).Round(2)
	result.Confidence = confidenceFromVariation(revenues, cfg)
	result.Trend = classifyTrend(revenues, cfg.StableBand)

	return result
}

// GetForecastReport is the query-shaped entry point: it aggregates raw
// service entries into the trailing monthly window ending at ref and runs
// the forecast over it.
func GetForecastReport(entries []models.ServiceEntry, ref time.Time, cfg config.ForecastConfig) *models.ForecastResult {
	history := GroupServicesByMonth(entries, cfg.WindowMonths, ref)
	return GetRevenueForecast(history, cfg)
}

func nextMonth(year, month int) (int, int) {
	if month >= 12 {
		return year + 1, 1
	}
	return year, month + 1
}

func clampNonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// weightedMovingAverage averages the series with linearly increasing weight
// toward the most recent point: weights 1..n over an n-point window.
func weightedMovingAverage(points []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	var weighted, totalWeight float64
	for i, v := range points {
		w := float64(i + 1)
		weighted += v * w
		totalWeight += w
	}
	return weighted / totalWeight
}

// regressionForecast fits y = slope*x + intercept over x = 0..n-1 and
// evaluates the line at x = n, the next month index.
func regressionForecast(points []float64) float64 {
	n := float64(len(points))
	if n == 0 {
		return 0
	}
	if n == 1 {
		return points[0]
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range points {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return sumY / n
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return slope*n + intercept
}

// confidenceFromVariation maps the coefficient of variation of the history
// to a confidence label. Monotone by construction: more dispersion never
// yields a more confident label.
func confidenceFromVariation(points []float64, cfg config.ForecastConfig) models.ConfidenceLevel {
	mean, stddev := meanStddev(points)
	if mean == 0 {
		if stddev == 0 {
			return models.ConfidenceHigh
		}
		return models.ConfidenceLow
	}
	cv := math.Abs(stddev / mean)
	switch {
	case cv <= cfg.HighCVMax:
		return models.ConfidenceHigh
	case cv <= cfg.MediumCVMax:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func meanStddev(points []float64) (mean, stddev float64) {
	n := float64(len(points))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range points {
		sum += v
	}
	mean = sum / n
	var sumSq float64
	for _, v := range points {
		d := v - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / n)
	return mean, stddev
}

// classifyTrend compares the most recent month against the trailing average
// of the earlier points. Changes inside stableBand (relative) are stable.
// Always returns one of the three directions.
func classifyTrend(points []float64, stableBand float64) models.TrendDirection {
	if len(points) < 2 {
		return models.TrendStable
	}
	last := points[len(points)-1]
	var sum float64
	for _, v := range points[:len(points)-1] {
		sum += v
	}
	avg := sum / float64(len(points)-1)
	if avg == 0 {
		if last > 0 {
			return models.TrendGrowing
		}
		return models.TrendStable
	}
	change := (last - avg) / math.Abs(avg)
	switch {
	case change > stableBand:
		return models.TrendGrowing
	case change < -stableBand:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}
