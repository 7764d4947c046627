// Package requestid propagates a per-request identifier through context,
// HTTP headers and log records.
//
// The middleware trusts well-formed inbound X-Request-ID headers (useful
// behind gateways that already assign IDs) and generates a UUID otherwise:
//
//	mux := http.NewServeMux()
//	handler := requestid.Middleware()(mux)
//
// Downstream code reads the ID with requestid.FromContext; the logger
// package picks it up automatically via requestid.LoggerExtractor.
package requestid
