package common

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	var stored, fallback bytes.Buffer
	storedLogger := slog.New(slog.NewTextHandler(&stored, nil)).With("worker_id", 3)
	fallbackLogger := slog.New(slog.NewTextHandler(&fallback, nil))

	ctx := WithExtractionID(WithLogger(context.Background(), storedLogger), "abc")
	LoggerFromContext(ctx, fallbackLogger).Info("hello")

	assert.Contains(t, stored.String(), "worker_id=3")
	assert.Contains(t, stored.String(), "extraction_id=abc")
	assert.Empty(t, fallback.String())

	LoggerFromContext(context.Background(), fallbackLogger).Info("plain")
	assert.Contains(t, fallback.String(), "msg=plain")
	assert.NotContains(t, fallback.String(), "extraction_id")
}
