package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopSearchQuery(t *testing.T) {
	q := StopSearchQuery("E3158")

	assert.Contains(t, q, `stops(name: "E3158")`)
	for _, field := range []string{"gtfsId", "name", "code", "platformCode", "patterns", "headsign", "shortName"} {
		assert.Contains(t, q, field)
	}
}

func TestStopSearchQuery_NoEscaping(t *testing.T) {
	q := StopSearchQuery(`Töölö"`)
	assert.Contains(t, q, `stops(name: "Töölö"")`)
}

func TestDeparturesQuery(t *testing.T) {
	q := DeparturesQuery("HSL:2222234", 0)

	assert.Contains(t, q, `stop(id: "HSL:2222234")`)
	assert.Contains(t, q, "stoptimesWithoutPatterns {")
	assert.NotContains(t, q, "numberOfDepartures")
	for _, field := range []string{"headsign", "serviceDay", "scheduledDeparture", "departureDelay"} {
		assert.Contains(t, q, field)
	}

	q = DeparturesQuery("HSL:2222234", 12)
	assert.Contains(t, q, "stoptimesWithoutPatterns(numberOfDepartures: 12) {")
}

func TestEncodeRequest(t *testing.T) {
	body, err := EncodeRequest("{\n  stop(id: \"HSL:1\") { name }\n}")
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"{\n  stop(id: \"HSL:1\") { name }\n}"}`, string(body))
}
