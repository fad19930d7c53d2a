package apperrors

// Error codes - organized by domain

// Content store errors (CMS_*)
const (
	ErrCodeCMSFetchFailed       = "CMS_FETCH_FAILED"
	ErrCodeCMSUnknownCollection = "CMS_UNKNOWN_COLLECTION"
	ErrCodeCMSUnauthorized      = "CMS_UNAUTHORIZED"
	ErrCodeCMSUnavailable       = "CMS_UNAVAILABLE"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeInvalidInput = "VALIDATION_INVALID_INPUT"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodePageNotFound       = "RESOURCE_PAGE_NOT_FOUND"
	ErrCodeEntityTypeNotFound = "RESOURCE_ENTITY_TYPE_NOT_FOUND"
)

// Rate limiting errors (RATE_*)
const (
	ErrCodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	ErrCodeContactLimitExceeded = "RATE_CONTACT_LIMIT_EXCEEDED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeRenderFailed    = "INTERNAL_RENDER_FAILED"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
