package form

import "errors"

// User-facing messages.
const (
	MsgEmptyURL      = "Please enter a URL"
	MsgInvalidURL    = "Please enter a valid URL"
	MsgRejected      = "Failed to shorten URL"
	MsgRequestFailed = "An error occurred while shortening the URL"
)

// ErrBusy is returned by Submit while another submission is in flight.
var ErrBusy = errors.New("submission already in progress")

// ValidationError is resolved client-side; the shortening service is never contacted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError covers both rejected requests and transport failures.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns the text to show for err, or "" if err carries none.
func Message(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Message
	}

	return ""
}
