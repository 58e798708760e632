package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDeparture(t *testing.T) {
	deps := []Departure{
		{Headsign: "Kamppi", EstimatedTime: 1500},
		{Headsign: "Airport", EstimatedTime: 1200, Realtime: true},
		{Headsign: "Itäkeskus", EstimatedTime: 1300},
	}

	next, ok := NextDeparture(deps)
	assert.True(t, ok)
	assert.Equal(t, "Airport", next.Headsign)
	assert.Equal(t, 1, CountRealtime(deps))
}

func TestNextDeparture_Empty(t *testing.T) {
	_, ok := NextDeparture(nil)
	assert.False(t, ok)
	assert.Equal(t, 0, CountRealtime(nil))
}
