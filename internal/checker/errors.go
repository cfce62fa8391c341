package checker

import "fmt"

// RequestError indicates the outbound request could not be completed
// (DNS failure, refused connection, exceeded timeout, malformed URL).
type RequestError struct {
	Target string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Target, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// HTTPStatusError indicates the server answered with an error status.
type HTTPStatusError struct {
	Target     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("request to %s returned HTTP %d", e.Target, e.StatusCode)
}
