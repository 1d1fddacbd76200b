package vecnd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEval(t *testing.T) {
	ctx := context.Background()

	t.Run("success at debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogEval(ctx, "dot", 3, nil)
		assert.Contains(t, buf.String(), "eval completed")
		assert.Contains(t, buf.String(), "op=dot")
		assert.Contains(t, buf.String(), "dimension=3")
	})

	t.Run("success hidden at info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		l.LogEval(ctx, "dot", 3, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))

		l.LogEval(ctx, "parse", 2, errors.New("boom"))
		assert.Contains(t, buf.String(), `"msg":"eval failed"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil)).WithOp("norm").WithDimension(4)

	l.Info("hello")
	assert.Contains(t, buf.String(), "op=norm")
	assert.Contains(t, buf.String(), "dimension=4")
}

func TestNewTextAndJSONLogger(t *testing.T) {
	ctx := context.Background()

	var text bytes.Buffer
	NewTextLogger(&text, slog.LevelDebug).LogEval(ctx, "norm", 2, nil)
	assert.Contains(t, text.String(), `msg="eval completed"`)
	assert.Contains(t, text.String(), "op=norm")

	var js bytes.Buffer
	NewJSONLogger(&js, slog.LevelWarn).LogEval(ctx, "norm", 2, nil)
	assert.Empty(t, js.String())
	NewJSONLogger(&js, slog.LevelWarn).LogEval(ctx, "norm", 2, errors.New("boom"))
	assert.Contains(t, js.String(), `"level":"ERROR"`)
	assert.Contains(t, js.String(), `"op":"norm"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogEval(context.Background(), "dot", 3, errors.New("ignored"))
}
