package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/environment"
	"github.com/dmitrymomot/guardkit/pkg/logger"
	"github.com/dmitrymomot/guardkit/pkg/requestid"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNewDefaultsToJSONInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("visible")
	rec := decodeRecord(t, &buf)
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewStaticAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "guardkit")),
	)

	log.Info("x")
	rec := decodeRecord(t, &buf)
	assert.Equal(t, "guardkit", rec["service"])
}

func TestWithEnvironmentPresets(t *testing.T) {
	t.Parallel()

	t.Run("development is text and debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment(environment.Development, "api"),
			logger.WithOutput(&buf),
		)

		log.Debug("dev detail")
		out := buf.String()
		assert.Contains(t, out, "msg=\"dev detail\"")
		assert.Contains(t, out, "service=api")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production is json and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment(environment.Production, "api"),
			logger.WithOutput(&buf),
		)

		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("served")
		rec := decodeRecord(t, &buf)
		assert.Equal(t, "api", rec["service"])
		assert.Equal(t, "production", rec["env"])
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	ctx := requestid.WithContext(context.Background(), "req-99")
	log.InfoContext(ctx, "handled")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "req-99", rec["request_id"])
}

func TestContextExtractorSkipsWhenUnset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "handled")

	rec := decodeRecord(t, &buf)
	assert.NotContains(t, rec, "request_id")
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(assert.AnError).Key)

	assert.Equal(t, slog.String("component", "sanitizer"), logger.Component("sanitizer"))
	assert.Equal(t, slog.String("request_id", "r1"), logger.RequestID("r1"))
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("event", "violation"), logger.Event("violation"))
}
