package geo

import (
	"testing"

	"backoffice/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		location string
		flag     string
		matched  bool
	}{
		{"Addis Ababa", "🇪🇹", true},
		{"  addis ababa ", "🇪🇹", true},
		{"Addis", "🇪🇹", true},
		{"Washington, DC", "🇺🇸", true},
		{"Ethiopia", "🇪🇹", true},
		{"Calgary, Canada", "🇨🇦", true},
		{"Vancouver, Canada", "🇨🇦", true},
		{"Reykjavik", Globe, false},
		{"Unknown", Globe, false},
		{"", Globe, false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			pos, flag, ok := Locate(tt.location)
			assert.Equal(t, tt.flag, flag)
			assert.Equal(t, tt.matched, ok)
			if !ok {
				assert.Equal(t, Center, pos)
			}
		})
	}
}

func TestLocateSubstringAmbiguity(t *testing.T) {
	// "London, Ontario" contains "london" and resolves to London, UK.
	ontario, flag, ok := Locate("London, Ontario")
	london, _, _ := Locate("London")

	assert.True(t, ok)
	assert.Equal(t, london, ontario)
	assert.Equal(t, "🇬🇧", flag)
}

func TestPins(t *testing.T) {
	pins := Pins([]model.LocationCount{
		{Location: "Toronto", Count: 4},
		{Location: "Unknown", Count: 2},
		{Location: "", Count: 1},
	})

	assert.Len(t, pins, 3)
	assert.Equal(t, "🇨🇦", pins[0].Flag)
	assert.EqualValues(t, 4, pins[0].Count)
	assert.False(t, pins[1].Matched)
	assert.Equal(t, "", pins[2].Location)
	assert.Equal(t, Globe, pins[2].Flag)
}
