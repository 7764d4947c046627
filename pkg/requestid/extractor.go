package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that injects the request ID
// into every log record produced within the request scope.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
