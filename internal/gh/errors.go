package gh

import "fmt"

// FetchError is a failed network call against the hosting API.
// StatusCode is 0 when the failure happened below HTTP (timeout, DNS, ...);
// in that case Err carries the transport error. A zero-length PR list is
// never reported as a FetchError.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
