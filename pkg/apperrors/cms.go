package apperrors

import (
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
)

// FromFetchError converts a content store failure into an AppError. An
// unreachable store answers 503; every other cause answers 502. The cause code
// travels in Detail; the upstream message stays in Err.
func FromFetchError(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	var appErr *AppError
	cause := cms.CauseOf(err)
	switch cause {
	case cms.CauseTransport:
		appErr = NewServiceUnavailable(ErrCodeCMSUnavailable, "Content store is unreachable", err)
	case cms.CauseNotFound:
		appErr = NewBadGateway(ErrCodeCMSUnknownCollection, "Content collection does not exist", err)
	case cms.CauseUnauthorized:
		appErr = NewBadGateway(ErrCodeCMSUnauthorized, "Content store rejected the credentials", err)
	default:
		appErr = NewBadGateway(ErrCodeCMSFetchFailed, "Content is temporarily unavailable", err)
	}
	if cause != "" {
		appErr.WithDetail(string(cause))
	}
	return appErr
}
