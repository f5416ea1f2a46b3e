package interaction

import "fmt"

// StatusError is a non-2xx reply from the interaction service
type StatusError struct {
	Endpoint   string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if len(e.Body) > 200 {
		return fmt.Sprintf("%s returned %d: %s...", e.Endpoint, e.StatusCode, e.Body[:200])
	}
	return fmt.Sprintf("%s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
