// Package logger builds *slog.Logger instances for the service.
//
// New takes functional options. WithEnvironment selects text output at debug
// level for development and JSON at info level for staging and production.
// WithContextExtractors registers callbacks that copy request-scoped values,
// such as the request id, from context.Context into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// The attribute helpers (Error, UserID, RequestID, Component, Event, ...)
// keep key names consistent. Error returns an empty Attr for a nil error so
// it can be passed unconditionally.
package logger
