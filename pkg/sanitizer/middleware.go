package sanitizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

const defaultMaxBodySize = 1 << 20 // 1 MiB

// ErrorResponder writes the response when sanitization rejects or fails on a
// request body.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareOption configures the sanitization middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	maxBodySize int64
	onError     ErrorResponder
}

// WithMaxBodySize limits how many bytes of the request body are read.
func WithMaxBodySize(n int64) MiddlewareOption {
	return func(c *middlewareConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithErrorResponder replaces the default plain-text rejection response.
func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware sanitizes JSON request bodies in place before the next handler
// runs. Non-JSON, empty, and malformed bodies pass through untouched; the
// handler's own binder stays responsible for rejecting bad JSON. Strict-mode
// rejections surface through the configured error responder.
func Middleware(engine *Engine, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		maxBodySize: defaultMaxBodySize,
		onError:     defaultErrorResponder,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasJSONBody(r) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxBodySize))
			if err != nil {
				cfg.onError(w, r, err)
				return
			}
			_ = r.Body.Close()

			var payload any
			if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &payload) != nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
				next.ServeHTTP(w, r)
				return
			}

			res, err := engine.Sanitize(payload)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			sanitized, err := json.Marshal(res.Sanitized)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(sanitized))
			r.ContentLength = int64(len(sanitized))
			next.ServeHTTP(w, r)
		})
	}
}

func hasJSONBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func defaultErrorResponder(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *ViolationError
	if errors.As(err, &vErr) {
		http.Error(w, vErr.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "failed to sanitize request body", http.StatusInternalServerError)
}
