package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteNames_SetKeepsFirstPosition(t *testing.T) {
	r := NewRouteNames()
	r.Set("Airport", "550")
	r.Set("Kamppi", "102")
	r.Set("Airport", "550B")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []RouteName{
		{Headsign: "Airport", ShortName: "550B"},
		{Headsign: "Kamppi", ShortName: "102"},
	}, r.Entries())

	name, ok := r.Get("Airport")
	assert.True(t, ok)
	assert.Equal(t, "550B", name)

	_, ok = r.Get("airport")
	assert.False(t, ok)
}

func TestRouteNames_Match(t *testing.T) {
	r := NewRouteNames()
	r.Set("airport", "615")
	r.Set("Rautatientori via Kamppi", "550")
	r.Set("ITÄKESKUS", "560")

	tests := []struct {
		name     string
		headsign string
		want     string
		ok       bool
	}{
		{"key inside headsign", "Airport via Center", "615", true},
		{"headsign inside key", "rautatientori", "550", true},
		{"unicode case folding", "Itäkeskus (M)", "560", true},
		{"no match", "Espoon keskus", "", false},
		{"empty headsign", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.headsign)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.ShortName)
		})
	}
}

func TestRouteNames_MatchFirstWins(t *testing.T) {
	r := NewRouteNames()
	r.Set("Center", "1")
	r.Set("Airport", "2")

	got, ok := r.Match("Airport via Center")
	assert.True(t, ok)
	assert.Equal(t, "1", got.ShortName)
}

func TestRouteNames_Nil(t *testing.T) {
	var r *RouteNames
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Entries())

	_, ok := r.Match("anything")
	assert.False(t, ok)
}
