package normalizer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/normalizer"
	"github.com/dmitrymomot/guardkit/pkg/requestid"
)

func wrap(t *testing.T, cfg normalizer.Config, handler http.HandlerFunc) http.Handler {
	t.Helper()
	cfg.Enabled = true
	engine := normalizer.New(cfg)
	return requestid.Middleware()(normalizer.Middleware(engine)(handler))
}

func TestMiddlewareWrapsSuccess(t *testing.T) {
	t.Parallel()

	handler := wrap(t, normalizer.Config{Format: normalizer.FormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7})
		})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, map[string]any{"id": float64(7)}, resp["data"])

	md, ok := resp["metadata"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, md["requestId"])
}

func TestMiddlewareWrapsErrorStatus(t *testing.T) {
	t.Parallel()

	handler := wrap(t, normalizer.Config{ErrorFormat: normalizer.ErrorFormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "item not found"})
		})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/404", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])

	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
	assert.Equal(t, "item not found", errObj["message"])
}

func TestMiddlewareStatusCodeMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusBadRequest, "VALIDATION_ERROR"},
		{http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{http.StatusForbidden, "AUTHENTICATION_ERROR"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusInternalServerError, "INTERNAL_ERROR"},
		{http.StatusBadGateway, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			handler := wrap(t, normalizer.Config{ErrorFormat: normalizer.ErrorFormatStandard},
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				})

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			errObj, ok := resp["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, errObj["code"])
		})
	}
}

func TestMiddlewarePassesThroughNonJSON(t *testing.T) {
	t.Parallel()

	handler := wrap(t, normalizer.Config{Format: normalizer.FormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("pong"))
		})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMiddlewarePassesThroughMalformedJSON(t *testing.T) {
	t.Parallel()

	handler := wrap(t, normalizer.Config{Format: normalizer.FormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"broken":`))
		})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, `{"broken":`, rec.Body.String())
}

func TestMiddlewareSkipsNormalizedPayload(t *testing.T) {
	t.Parallel()

	body := `{"success":true,"data":1,"metadata":{"timestamp":"2025-06-01T12:00:00Z","requestId":"abc","version":"1.0.0"}}`

	handler := wrap(t, normalizer.Config{Format: normalizer.FormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.JSONEq(t, body, rec.Body.String())
}

func TestMiddlewareDisabledEngine(t *testing.T) {
	t.Parallel()

	engine := normalizer.New(normalizer.Config{Enabled: false})
	handler := normalizer.Middleware(engine)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"raw":true}`))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, `{"raw":true}`, rec.Body.String())
}

func TestMiddlewareReusesRequestID(t *testing.T) {
	t.Parallel()

	handler := wrap(t, normalizer.Config{Format: normalizer.FormatStandard},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	md, ok := resp["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "client-supplied-id", md["requestId"])
}
