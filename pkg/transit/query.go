package transit

import (
	"fmt"
)

// StopSearchQuery searches stops by code or name. The code is embedded as-is;
// the API rejects anything that does not parse.
func StopSearchQuery(code string) string {
	return fmt.Sprintf(`{
  stops(name: "%s") {
    gtfsId
    name
    code
    platformCode
    patterns {
      headsign
      route {
        shortName
      }
    }
  }
}`, code)
}

// DeparturesQuery lists upcoming departures of a stop across all of its
// patterns. A positive limit is passed as numberOfDepartures, otherwise the
// API default applies.
func DeparturesQuery(stopID string, limit int) string {
	args := ""
	if limit > 0 {
		args = fmt.Sprintf("(numberOfDepartures: %d)", limit)
	}

	return fmt.Sprintf(`{
  stop(id: "%s") {
    name
    stoptimesWithoutPatterns%s {
      headsign
      serviceDay
      scheduledDeparture
      departureDelay
      realtime
      realtimeState
    }
  }
}`, stopID, args)
}

type graphQLRequest struct {
	Query string `json:"query"`
}

// EncodeRequest wraps a query into the JSON request body
func EncodeRequest(query string) ([]byte, error) {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return body, nil
}
