package service

import (
	"os"
	"path/filepath"
	"testing"

	"backoffice/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlaceholderMetrics(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		m, err := LoadPlaceholderMetrics("")
		require.NoError(t, err)
		assert.Equal(t, DefaultPlaceholderMetrics(), m)
	})

	t.Run("file overrides only given keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "placeholders.yaml")
		require.NoError(t, os.WriteFile(path, []byte("premium_metrics:\n  retention: 90\ninsights:\n  - one\n"), 0o600))

		m, err := LoadPlaceholderMetrics(path)
		require.NoError(t, err)
		assert.Equal(t, 90.0, m.PremiumMetrics.Retention)
		assert.Equal(t, DefaultPlaceholderMetrics().PremiumMetrics.AvgActivity, m.PremiumMetrics.AvgActivity)
		assert.Equal(t, []string{"one"}, m.Insights)
		assert.Equal(t, DefaultPlaceholderMetrics().Trends, m.Trends)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPlaceholderMetrics(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestDashboardOptionsFromConfig(t *testing.T) {
	opts, err := DashboardOptionsFromConfig(&config.Config{GrowthDefaultMonths: 12, CategoryMatchMode: MatchNormalized})
	require.NoError(t, err)
	assert.Equal(t, 12, opts.GrowthDefaultMonths)
	assert.Equal(t, MatchNormalized, opts.CategoryMatchMode)

	_, err = DashboardOptionsFromConfig(&config.Config{CategoryMatchMode: "fuzzy"})
	assert.Error(t, err)
}
