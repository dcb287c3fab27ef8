package service

import (
	"fmt"
	"os"

	"backoffice/internal/config"
	"backoffice/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultPlaceholderMetrics returns the built-in illustrative membership numbers.
func DefaultPlaceholderMetrics() model.PlaceholderMetrics {
	return model.PlaceholderMetrics{
		FreeMetrics: model.TierMetrics{
			AvgActivity: 3.2,
			Retention:   45,
			Conversion:  8,
		},
		PremiumMetrics: model.TierMetrics{
			AvgActivity: 7.8,
			Retention:   82,
			Revenue:     4999,
		},
		Insights: []string{
			"Premium members engage more than twice as often as free members",
			"Most upgrades happen within the first month after sign-up",
			"Business directory listings are the top premium feature",
		},
		Trends: model.MembershipTrends{
			FreeGrowth:    12,
			PremiumGrowth: 18,
		},
	}
}

// LoadPlaceholderMetrics reads placeholder metrics from a YAML file. Keys
// missing from the file keep their default values; an empty path returns the
// defaults unchanged.
func LoadPlaceholderMetrics(path string) (model.PlaceholderMetrics, error) {
	metrics := DefaultPlaceholderMetrics()
	if path == "" {
		return metrics, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return metrics, fmt.Errorf("reading placeholder metrics %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &metrics); err != nil {
		return metrics, fmt.Errorf("parsing placeholder metrics %s: %w", path, err)
	}
	return metrics, nil
}

// DashboardOptionsFromConfig resolves dashboard tunables, loading placeholder
// metrics and rejecting an unknown category match mode.
func DashboardOptionsFromConfig(cfg *config.Config) (DashboardOptions, error) {
	placeholders, err := LoadPlaceholderMetrics(cfg.PlaceholderMetricsFile)
	if err != nil {
		return DashboardOptions{}, err
	}
	if _, err := NewCategoryMatcher(cfg.CategoryMatchMode, nil); err != nil {
		return DashboardOptions{}, err
	}
	return DashboardOptions{
		GrowthDefaultMonths:   cfg.GrowthDefaultMonths,
		LocationsDefaultLimit: cfg.LocationsDefaultLimit,
		LocationsMaxLimit:     cfg.LocationsMaxLimit,
		CategoryMatchMode:     cfg.CategoryMatchMode,
		Placeholders:          placeholders,
	}, nil
}
