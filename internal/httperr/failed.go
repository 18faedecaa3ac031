package httperr

import "fmt"

// Failed represents a request that must be aborted with a status code and a
// client-facing message. Guards and handlers panic with a Failed value; the
// recovery middleware converts it into the {error: true, message} body.
type Failed struct {
	Status  int
	Message string

	cause error
}

func (f Failed) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("request failed: %d %s: %v", f.Status, f.Message, f.cause)
	}
	return fmt.Sprintf("request failed: %d %s", f.Status, f.Message)
}

func (f Failed) Unwrap() error {
	return f.cause
}

// MissingCredential is raised when a guarded route is called without an
// Authorization header.
func MissingCredential() Failed {
	return Failed{Status: 401, Message: "authorization required"}
}

// InvalidCredential is raised when the bearer token fails verification.
func InvalidCredential() Failed {
	return Failed{Status: 401, Message: "invalid or expired token"}
}

// Forbidden is raised when the authenticated identity lacks the required
// role or tries to read another identity's data.
func Forbidden() Failed {
	return Failed{Status: 403, Message: "forbidden access"}
}

// Internal wraps a store or processor failure. The underlying error is kept
// for the recovery middleware's log line; the client only sees the generic
// message.
func Internal(err error) Failed {
	return Failed{Status: 500, Message: "internal server error", cause: err}
}
