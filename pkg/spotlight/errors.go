package spotlight

import "fmt"

// TransportError is a network or HTTP level failure: the request never
// completed, or the server answered with a non-2xx status. Transport errors
// are retried by the client up to its attempt budget.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DataFormatError means the response body could not be interpreted: the outer
// or nested JSON is malformed, or a required structural field is missing.
// Treated as potentially transient and retried the same as transport errors.
type DataFormatError struct {
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response format: %s: %s", e.Reason, e.Err)
	}
	return "unexpected response format: " + e.Reason
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the local environment is unusable, e.g. the system
// locale cannot be read. Retrying cannot fix it, so the client surfaces it
// immediately.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
