package config_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/config"
)

func TestGSTRatePercent(t *testing.T) {
	cases := []struct {
		name string
		env  string
		want int64
	}{
		{name: "default", env: "", want: 5},
		{name: "revised rate", env: "18", want: 18},
		{name: "garbage falls back", env: "banana", want: 5},
		{name: "negative falls back", env: "-3", want: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GST_RATE_PERCENT", tc.env)
			if got := config.GSTRatePercent(); !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Fatalf("expected %d, got %s", tc.want, got)
			}
		})
	}
}

func TestDefaultForecastConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FORECAST_WINDOW_MONTHS", "12")
	t.Setenv("FORECAST_MIN_HISTORY", "3")
	t.Setenv("FORECAST_REGRESSION_WEIGHT", "0.7")
	t.Setenv("FORECAST_STABLE_BAND", "0.1")
	t.Setenv("FORECAST_HIGH_CV_MAX", "0.15")
	t.Setenv("FORECAST_MEDIUM_CV_MAX", "0.4")

	cfg := config.DefaultForecastConfig()
	if cfg.WindowMonths != 12 {
		t.Fatalf("window expected 12, got %d", cfg.WindowMonths)
	}
	if cfg.MinHistory != 3 {
		t.Fatalf("min history expected 3, got %d", cfg.MinHistory)
	}
	if cfg.RegressionWeight != 0.7 {
		t.Fatalf("regression weight expected 0.7, got %v", cfg.RegressionWeight)
	}
	if math.Abs(cfg.WeightedAvgWeight-0.3) > 1e-9 {
		t.Fatalf("weighted-average weight should be the remainder, got %v", cfg.WeightedAvgWeight)
	}
	if cfg.StableBand != 0.1 || cfg.HighCVMax != 0.15 || cfg.MediumCVMax != 0.4 {
		t.Fatalf("thresholds not applied: %+v", cfg)
	}
}

func TestDefaultForecastConfig_RejectsOutOfRange(t *testing.T) {
	t.Setenv("FORECAST_WINDOW_MONTHS", "1")
	t.Setenv("FORECAST_REGRESSION_WEIGHT", "1.5")
	t.Setenv("FORECAST_STABLE_BAND", "nope")

	cfg := config.DefaultForecastConfig()
	if cfg.WindowMonths != 6 {
		t.Fatalf("sub-minimum window should fall back to 6, got %d", cfg.WindowMonths)
	}
	if cfg.RegressionWeight != 0.6 || cfg.WeightedAvgWeight != 0.4 {
		t.Fatalf("out-of-range weight should fall back to 0.6/0.4, got %v/%v",
			cfg.RegressionWeight, cfg.WeightedAvgWeight)
	}
	if cfg.StableBand != 0.05 {
		t.Fatalf("unparseable band should fall back to 0.05, got %v", cfg.StableBand)
	}
}
