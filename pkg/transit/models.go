package transit

// graphQLError is one entry of the top-level "errors" array
type graphQLError struct {
	Message string `json:"message"`
}

// StopSearchResponse represents the payload returned by the stops(name:) query
type StopSearchResponse struct {
	Data struct {
		Stops []StopResult `json:"stops"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// StopResult is a single stop as returned by the API
type StopResult struct {
	GtfsID       *string         `json:"gtfsId"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	PlatformCode string          `json:"platformCode"`
	Patterns     []PatternResult `json:"patterns"`
}

// PatternResult links a headsign to the route serving it
type PatternResult struct {
	Headsign string `json:"headsign"`
	Route    struct {
		ShortName string `json:"shortName"`
	} `json:"route"`
}

// DeparturesResponse represents the payload returned by the stop(id:) query
type DeparturesResponse struct {
	Data struct {
		Stop *struct {
			Name      string           `json:"name"`
			Stoptimes []StoptimeResult `json:"stoptimesWithoutPatterns"`
		} `json:"stop"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// StoptimeResult is one upcoming departure. Times are seconds; ServiceDay is
// the epoch of the operating day's midnight.
type StoptimeResult struct {
	Headsign           string `json:"headsign"`
	ServiceDay         int64  `json:"serviceDay"`
	ScheduledDeparture int64  `json:"scheduledDeparture"`
	DepartureDelay     int64  `json:"departureDelay"`
	Realtime           bool   `json:"realtime"`
	RealtimeState      string `json:"realtimeState"`
}

// Stop is a resolved stop. It does not change once the board is running.
type Stop struct {
	ID       string
	Name     string
	Code     string
	Platform string
	Routes   *RouteNames
}

// Departure is a departure ready for display
type Departure struct {
	Headsign      string
	DelayMinutes  int64
	EstimatedTime int64 // epoch seconds
	Realtime      bool
	RealtimeState string
}
