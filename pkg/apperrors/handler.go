package apperrors

import (
	"net/http"
	"strings"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard error response structure
type ErrorResponse struct {
	Error     string `json:"error"`                // Error code
	Message   string `json:"message"`              // Human-readable message
	Detail    string `json:"detail,omitempty"`     // Additional details
	RequestID string `json:"request_id,omitempty"` // Request ID for tracing
}

// ErrorPageFunc renders the browser-facing error page. The message is always
// safe to show to a visitor.
type ErrorPageFunc func(c echo.Context, status int, message string) error

// jsonPrefixes are answered with ErrorResponse instead of the HTML page.
var jsonPrefixes = []string{"/api/", "/health", "/metrics"}

// HTTPErrorHandler returns an Echo error handler that uses structured logging.
// Browser requests are answered through renderPage when it is non-nil.
func HTTPErrorHandler(log logger.Logger, renderPage ErrorPageFunc) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't handle if already committed
		if c.Response().Committed {
			return
		}

		// Get request ID from context
		requestID := logger.GetRequestIDFromContext(c)
		reqLog := log.WithRequestID(requestID)

		var response ErrorResponse
		var status int

		if appErr, ok := AsAppError(err); ok {
			// Our application error
			status = appErr.HTTPStatus
			response = ErrorResponse{
				Error:     appErr.Code,
				Message:   appErr.Message,
				Detail:    appErr.Detail,
				RequestID: requestID,
			}

			// Log with appropriate level
			if status >= 500 {
				reqLog.Error("Internal error",
					appErr.Err,
					logger.String("error_code", appErr.Code),
					logger.String("message", appErr.Message),
				)
			} else if status >= 400 {
				reqLog.Warn("Client error",
					logger.String("error_code", appErr.Code),
					logger.String("message", appErr.Message),
				)
			}
		} else if he, ok := err.(*echo.HTTPError); ok {
			// Echo HTTP error
			status = he.Code
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			response = ErrorResponse{
				Error:     "HTTP_ERROR",
				Message:   msg,
				RequestID: requestID,
			}

			if status >= 500 {
				reqLog.Error("HTTP error", he.Internal, logger.Status(status), logger.String("message", msg))
			}
		} else {
			// Unknown error - treat as internal server error
			status = http.StatusInternalServerError
			response = ErrorResponse{
				Error:     ErrCodeUnexpectedError,
				Message:   "An unexpected error occurred",
				RequestID: requestID,
			}
			reqLog.Error("Unhandled error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}

		if renderPage == nil || wantsJSON(c) {
			_ = c.JSON(status, response)
			return
		}

		if rerr := renderPage(c, status, VisitorMessage(status, response.Message)); rerr != nil {
			reqLog.Error("Error page render failed", rerr, logger.Status(status))
			_ = c.String(status, VisitorMessage(status, ""))
		}
	}
}

// VisitorMessage picks the text shown to a browser visitor. Messages of
// server-side failures are replaced so upstream details never reach the page.
func VisitorMessage(status int, message string) string {
	switch {
	case status == http.StatusNotFound:
		return "We couldn't find the page you were looking for."
	case status == http.StatusTooManyRequests:
		return "You've sent a lot of requests in a short time. Please try again later."
	case status >= 500:
		return "Something went wrong on our side. Please try again in a moment."
	case message != "":
		return message
	default:
		return http.StatusText(status)
	}
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range jsonPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// RespondWithSuccess is a helper to return a success response
func RespondWithSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
