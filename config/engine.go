package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// LoadEnv loads a .env file from the working directory if present.
// Missing files are not an error; deployments may inject env directly.
func LoadEnv() {
	_ = godotenv.Load()
}

// GSTRatePercent returns the GST rate applied to service base prices, as a
// percentage. Historical data contains both 5% and 18% entries, so the rate
// is configuration, never a constant.
//
// Set via env:
// - GST_RATE_PERCENT=5 (default) or GST_RATE_PERCENT=18
func GSTRatePercent() decimal.Decimal {
	raw := strings.TrimSpace(os.Getenv("GST_RATE_PERCENT"))
	if raw == "" {
		return decimal.NewFromInt(5)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		LogWarn(GetLogger(), "config", "GSTRatePercent", "env", "invalid GST_RATE_PERCENT, falling back to 5")
		return decimal.NewFromInt(5)
	}
	return rate
}

// ForecastConfig holds the tunables of the revenue forecast engine.
// The defaults mirror the production dashboards: a 6-month lookback feeding
// both component models, blended 60% regression / 40% weighted average.
type ForecastConfig struct {
	// WindowMonths is the trailing lookback fed to both component models.
	WindowMonths int
	// MinHistory is the minimum number of monthly points required before the
	// blended models run; below it the engine returns an insufficient_data
	// result instead of failing.
	MinHistory int
	// RegressionWeight + WeightedAvgWeight should sum to 1.
	RegressionWeight  float64
	WeightedAvgWeight float64
	// StableBand is the relative change (last month vs trailing average)
	// inside which the trend is classified as stable.
	StableBand float64
	// HighCVMax and MediumCVMax are coefficient-of-variation cutoffs for the
	// high and medium confidence labels. Anything above MediumCVMax is low.
	HighCVMax   float64
	MediumCVMax float64
}

// DefaultForecastConfig returns the forecast tunables. Every knob is
// env-overridable; invalid or out-of-range values fall back to the default
// with a warning.
//
// Set via env:
// - FORECAST_WINDOW_MONTHS=6 (min 2)
// - FORECAST_MIN_HISTORY=2 (min 2)
// - FORECAST_REGRESSION_WEIGHT=0.6 (in [0,1]; the weighted-average weight
//   is the remainder)
// - FORECAST_STABLE_BAND=0.05 (in [0,1])
// - FORECAST_HIGH_CV_MAX=0.2
// - FORECAST_MEDIUM_CV_MAX=0.5
func DefaultForecastConfig() ForecastConfig {
	cfg := ForecastConfig{
		WindowMonths: envInt("FORECAST_WINDOW_MONTHS", 6, 2),
		MinHistory:   envInt("FORECAST_MIN_HISTORY", 2, 2),
		StableBand:   envFloat("FORECAST_STABLE_BAND", 0.05, 0, 1),
		HighCVMax:    envFloat("FORECAST_HIGH_CV_MAX", 0.2, 0, 10),
		MediumCVMax:  envFloat("FORECAST_MEDIUM_CV_MAX", 0.5, 0, 10),
	}
	cfg.RegressionWeight = envFloat("FORECAST_REGRESSION_WEIGHT", 0.6, 0, 1)
	cfg.WeightedAvgWeight = 1 - cfg.RegressionWeight
	return cfg
}

func envInt(name string, fallback, min int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		LogWarn(GetLogger(), "config", "envInt", name, "invalid value, using default")
		return fallback
	}
	return n
}

func envFloat(name string, fallback, min, max float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < min || f > max {
		LogWarn(GetLogger(), "config", "envFloat", name, "invalid value, using default")
		return fallback
	}
	return f
}
