package tripplanner

import "fmt"

// The client reports exactly two failure kinds: NetworkError for
// transport level failures and APIError for responses the API itself
// produced. Parsing never fails - malformed entity data degrades to
// zero values inside the models package.

// APIError is a non-success response from the API: an error status
// code, or a success status with a body that is not JSON.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trip planner API error %d: %s", e.StatusCode, e.Message)
}

// NetworkError is a connectivity level failure: the request never
// produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("trip planner network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
