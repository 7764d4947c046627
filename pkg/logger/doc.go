// Package logger builds configured slog loggers with context-aware attribute
// injection.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "api"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Context extractors run on every record, so request-scoped values (request
// ID, client fingerprint, ...) show up in logs without being threaded through
// call sites. Attr helpers keep key names consistent across packages.
package logger
