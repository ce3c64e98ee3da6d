package errorhandler

import (
	"context"
	"net/http"

	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/response"
)

// HandleError logs the failure on the request logger and writes the error envelope.
// 5xx responses are logged at error level, everything else at warn.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	l := logger.FromContext(ctx)
	event := l.Warn()
	if status >= http.StatusInternalServerError {
		event = l.Error()
	}
	if err != nil {
		event = event.Err(err)
	}
	event.
		Str("error_code", code).
		Int("status_code", status).
		Msg(message)

	response.Error(w, status, code, message)
}

// HandleInternal answers 500 and logs the cause.
func HandleInternal(ctx context.Context, w http.ResponseWriter, err error) {
	logger.LogError(ctx, err, "Request failed")
	response.InternalError(w)
}

// HandleValidationError logs field errors and answers 400.
func HandleValidationError(ctx context.Context, w http.ResponseWriter, fieldErrors map[string]string) {
	logger.FromContext(ctx).Warn().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")

	response.ValidationError(w, fieldErrors)
}

// HandlePanic logs a recovered panic with its stack and answers 500.
func HandlePanic(ctx context.Context, w http.ResponseWriter, r *http.Request, panicErr interface{}, stack string) {
	logger.FromContext(ctx).Error().
		Interface("panic_error", panicErr).
		Str("panic_stack", stack).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Panic recovered")

	response.InternalError(w)
}
