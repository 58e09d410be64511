package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edgekit/edgekit/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text output with base attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttrs(logger.Component("api")),
		)
		log.Info("started")

		out := buf.String()
		assert.Contains(t, out, "msg=started")
		assert.Contains(t, out, "component=api")
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSON())
		log.Info("started")

		assert.Contains(t, buf.String(), `"msg":"started"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("hidden")
		log.Warn("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("discard drops records", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			logger.Discard().Error("dropped")
		})
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("request id attr", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "request_id", logger.RequestID("req-1").Key)
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	})

	t.Run("http attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "method", logger.Method("GET").Key)
		assert.Equal(t, "path", logger.Path("/todos").Key)
		assert.Equal(t, "status", logger.Status(200).Key)
		assert.Equal(t, "duration", logger.Duration(time.Second).Key)
	})
}
