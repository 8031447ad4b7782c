package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/helo/pkg/clientip"
	"github.com/dmitrymomot/helo/pkg/logger"
)

// RequestLogger logs one record per request. Server errors log at error
// level and client errors at warn.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(r.Context(), level, "http request",
				logger.Group("request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("ip", clientip.FromRequest(r)),
				),
				logger.Group("response",
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
				),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
