package safeint

import "log/slog"

// SlogFailureHandler returns a FailureHandler that records each failure on
// logger with structured fields before the operation unwinds. If logger is
// nil, slog.Default() is used. slog handlers are safe for concurrent use,
// so the returned handler is too.
func SlogFailureHandler(logger *slog.Logger) FailureHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err *Error) {
		logger.Error("checked arithmetic failed",
			"reason", err.msg,
			"file", err.loc.File,
			"line", err.loc.Line,
			"function", err.loc.Function,
		)
	}
}
