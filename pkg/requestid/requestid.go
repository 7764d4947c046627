package requestid

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the canonical request-ID header, read from inbound requests and
// echoed on responses.
const Header = "X-Request-ID"

const maxIDLength = 128

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

// WithContext stores the request ID in the context.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext retrieves the request ID, or empty when unset.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// Option configures the middleware.
type Option func(*config)

type config struct {
	header    string
	generator func() string
}

// WithHeader overrides the header the ID is read from and echoed on.
func WithHeader(header string) Option {
	return func(c *config) {
		if header != "" {
			c.header = header
		}
	}
}

// WithGenerator replaces the default UUID generator.
func WithGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generator = fn
		}
	}
}

// Middleware ensures every request carries a valid request ID: a well-formed
// inbound ID is trusted, anything else is replaced with a generated one. The
// ID is echoed on the response header and stored in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		header:    Header,
		generator: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(cfg.header)
			if !isValid(requestID) {
				requestID = cfg.generator()
			}
			w.Header().Set(cfg.header, requestID)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}

func isValid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
