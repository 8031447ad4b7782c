package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/helo/pkg/binder"
	"github.com/dmitrymomot/helo/pkg/logger"
	"github.com/dmitrymomot/helo/pkg/requestid"
	"github.com/dmitrymomot/helo/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
	Err        error
}

// ErrorRenderer builds the JSON body written for a classified error.
type ErrorRenderer func(info ErrorInfo) any

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal_server_error",
		Err:        err,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = http.StatusBadRequest
		info.Message = ErrUnsupportedMedia.Key
	case binder.IsBindingError(err):
		info.StatusCode = http.StatusBadRequest
		info.Message = ErrBadRequest.Key
	}

	// Validation errors override everything else
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusBadRequest
		info.Message = "validation_failed"
		info.Details = validationErr.Details()
	}

	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

func defaultErrorBody(info ErrorInfo) any {
	body := map[string]any{"error": info.Message}
	if len(info.Details) > 0 {
		body["details"] = info.Details
	}
	return body
}

// logError logs the error with request context
func logError(log *slog.Logger, ctx Context, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(info.Err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that logs the failure and writes
// the body produced by render. A nil render writes {"error": "<key>"}.
// Routes with their own error contract pass a renderer per route.
func NewErrorHandler(log *slog.Logger, render ErrorRenderer) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if render == nil {
		render = defaultErrorBody
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, info)

		resp := JSON(render(info), WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
