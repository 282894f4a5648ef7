package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtcli/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("tokenclient")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "tokenclient", attr.Value.String())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(150 * time.Millisecond)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 150*time.Millisecond, attr.Value.Duration())
}

func TestStatusCode(t *testing.T) {
	attr := logger.StatusCode(401)
	require.Equal(t, "status_code", attr.Key)
	assert.Equal(t, int64(401), attr.Value.Int64())
}

func TestURL(t *testing.T) {
	attr := logger.URL("https://auth.example.com/token")
	require.Equal(t, "url", attr.Key)
	assert.Equal(t, "https://auth.example.com/token", attr.Value.String())
}
