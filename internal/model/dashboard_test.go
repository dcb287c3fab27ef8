package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowthBucketLabels(t *testing.T) {
	t.Parallel()

	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		monthStart time.Time
	}{
		{"utc date", jan},
		{"same instant viewed west of UTC", jan.In(time.FixedZone("EST", -5*60*60))},
		{"same instant viewed east of UTC", jan.In(time.FixedZone("JST", 9*60*60))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := GrowthBucket{MonthStart: tt.monthStart}
			assert.Equal(t, "Jan", b.Label())
			assert.Equal(t, "2026-01", b.Month())
		})
	}
}
