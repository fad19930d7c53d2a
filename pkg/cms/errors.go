package cms

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is the single condition every listing failure satisfies.
// Callers that need the sub-cause inspect it with CauseOf.
var ErrFetchFailed = errors.New("cms: fetch failed")

// Cause classifies why a fetch failed.
type Cause string

const (
	CauseTransport    Cause = "transport"
	CauseUnauthorized Cause = "unauthorized"
	CauseNotFound     Cause = "not_found"
	CauseStatus       Cause = "status"
	CauseDecode       Cause = "decode"
)

// FetchError is returned by every Lister implementation in this package.
type FetchError struct {
	EntityType string
	Cause      Cause
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("cms: list %q failed (%s)", e.EntityType, e.Cause)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as ErrFetchFailed regardless of its cause.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// CauseOf returns the attached cause code, or "" when err is not a fetch failure.
func CauseOf(err error) Cause {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Cause
	}
	return ""
}

func fetchFailed(entityType string, cause Cause, status int, err error) *FetchError {
	return &FetchError{EntityType: entityType, Cause: cause, StatusCode: status, Err: err}
}
