package normalizer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Middleware wraps JSON handler output in the response envelope. The
// downstream response is buffered, classified by status code and rewritten:
// 2xx/3xx bodies become success envelopes, 4xx/5xx become error envelopes.
// Non-JSON responses, malformed bodies and already-normalized payloads pass
// through untouched.
func Middleware(engine *Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !engine.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			ctx := FromRequest(r)
			buf := &bufferingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(buf, r)

			body := buf.body.Bytes()
			if !isJSONResponse(buf.Header().Get("Content-Type")) {
				buf.passthrough()
				return
			}

			var payload any
			if len(bytes.TrimSpace(body)) > 0 {
				if err := json.Unmarshal(body, &payload); err != nil {
					buf.passthrough()
					return
				}
			}
			if IsNormalized(payload) {
				buf.passthrough()
				return
			}

			var envelope any
			if buf.status >= http.StatusBadRequest {
				envelope = engine.NormalizeError(payload, ctx, statusErrorCode(buf.status), nil)
			} else {
				envelope = engine.NormalizeSuccess(payload, ctx, nil)
			}

			data, err := json.Marshal(envelope)
			if err != nil {
				buf.passthrough()
				return
			}

			header := w.Header()
			header.Set("Content-Type", "application/json; charset=utf-8")
			header.Set("Content-Length", strconv.Itoa(len(data)))
			w.WriteHeader(buf.status)
			_, _ = w.Write(data)
		})
	}
}

// statusErrorCode maps HTTP status codes to envelope error codes. Unknown
// statuses return empty so classification can mine the payload instead.
func statusErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidationError
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeAuthenticationError
	case http.StatusNotFound:
		return CodeNotFound
	}
	if status >= http.StatusInternalServerError {
		return CodeInternalError
	}
	return ""
}

func isJSONResponse(contentType string) bool {
	// Handlers that never set a content type default to JSON wrapping;
	// explicit non-JSON types opt out.
	if contentType == "" {
		return true
	}
	return strings.HasPrefix(contentType, "application/json")
}

// bufferingWriter captures status and body so the envelope can be decided
// after the handler finishes.
type bufferingWriter struct {
	http.ResponseWriter
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *bufferingWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
}

func (w *bufferingWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(p)
}

// passthrough replays the captured response on the real writer unchanged.
func (w *bufferingWriter) passthrough() {
	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}
