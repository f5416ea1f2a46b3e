package interactions

import "errors"

var (
	// ErrRejected is returned by a Client when the interaction service refused
	// the request outright (4xx other than 429). Retrying will not help.
	ErrRejected = errors.New("interaction service rejected the request")

	// ErrMalformedEvent is returned when an outbox row cannot be turned into a
	// request, e.g. a comment event without a comment ID.
	ErrMalformedEvent = errors.New("malformed interaction event")
)

// IsPermanent reports whether a delivery error should stop further retries.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrMalformedEvent)
}
