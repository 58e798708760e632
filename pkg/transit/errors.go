package transit

import "fmt"

// TransportError is returned when the API could not be reached or the
// response was cut off mid-read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transit API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-200 response. The body is discarded.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// StopNotFoundError means the stop search returned no usable stop.
type StopNotFoundError struct {
	Code string
}

func (e *StopNotFoundError) Error() string {
	if e.Code == "" {
		return "could not find stop"
	}
	return fmt.Sprintf("could not find stop with code %s", e.Code)
}

// ParseError wraps a response body that did not have the expected shape.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to parse %s", e.What)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
