package transit

import (
	"errors"
	"strings"
)

// ParseOptions controls how departures are derived from a response
type ParseOptions struct {
	// ShowDelays applies the realtime delay; when false every departure is
	// shown at its scheduled time.
	ShowDelays bool
	// Limit is passed to the departures query as numberOfDepartures. Zero
	// keeps the API default.
	Limit int
}

// ParseStops decodes a stop search response into every stop carrying an id.
// code only labels the returned StopNotFoundError.
func ParseStops(body []byte, code string) ([]Stop, error) {
	var resp StopSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{What: "stop search response", Err: err}
	}

	if resp.Data.Stops == nil && len(resp.Errors) > 0 {
		return nil, &ParseError{What: "stop search response", Err: graphQLErrors(resp.Errors)}
	}

	var stops []Stop
	for _, s := range resp.Data.Stops {
		if s.GtfsID == nil || *s.GtfsID == "" {
			continue
		}
		stops = append(stops, newStop(s))
	}

	if len(stops) == 0 {
		return nil, &StopNotFoundError{Code: code}
	}
	return stops, nil
}

// ParseStop decodes a stop search response into its first stop. A first entry
// without an id counts as not found, even if later entries have one.
func ParseStop(body []byte, code string) (Stop, error) {
	var resp StopSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Stop{}, &ParseError{What: "stop search response", Err: err}
	}

	if resp.Data.Stops == nil && len(resp.Errors) > 0 {
		return Stop{}, &ParseError{What: "stop search response", Err: graphQLErrors(resp.Errors)}
	}

	if len(resp.Data.Stops) == 0 {
		return Stop{}, &StopNotFoundError{Code: code}
	}

	first := resp.Data.Stops[0]
	if first.GtfsID == nil || *first.GtfsID == "" {
		return Stop{}, &StopNotFoundError{Code: code}
	}

	return newStop(first), nil
}

func newStop(s StopResult) Stop {
	routes := NewRouteNames()
	for _, p := range s.Patterns {
		if p.Headsign == "" {
			continue
		}
		routes.Set(p.Headsign, p.Route.ShortName)
	}

	return Stop{
		ID:       *s.GtfsID,
		Name:     s.Name,
		Code:     s.Code,
		Platform: s.PlatformCode,
		Routes:   routes,
	}
}

// ParseDepartures decodes a departures response, keeping the upstream order.
func ParseDepartures(body []byte, opts ParseOptions) ([]Departure, error) {
	var resp DeparturesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{What: "departures response", Err: err}
	}

	if resp.Data.Stop == nil {
		if len(resp.Errors) > 0 {
			return nil, &ParseError{What: "departures response", Err: graphQLErrors(resp.Errors)}
		}
		return nil, &ParseError{What: "departures response", Err: errors.New("missing stop")}
	}

	departures := make([]Departure, 0, len(resp.Data.Stop.Stoptimes))
	for _, st := range resp.Data.Stop.Stoptimes {
		var delayMinutes int64
		if opts.ShowDelays {
			delayMinutes = floorDiv(st.DepartureDelay, 60)
		}

		departures = append(departures, Departure{
			Headsign:      st.Headsign,
			DelayMinutes:  delayMinutes,
			EstimatedTime: st.ServiceDay + st.ScheduledDeparture + delayMinutes*60,
			Realtime:      st.Realtime,
			RealtimeState: st.RealtimeState,
		})
	}

	return departures, nil
}

// floorDiv divides rounding towards negative infinity, so -45s is -1min
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func graphQLErrors(errs []graphQLError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return errors.New(strings.Join(msgs, "; "))
}
