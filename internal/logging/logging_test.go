package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/internal/logging"
	"github.com/next-trace/scg-result/result"
)

func observed(t *testing.T) (*logging.Logger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	return logging.Wrap(zap.New(core)), logs
}

func TestFailureField(t *testing.T) {
	t.Parallel()

	l, logs := observed(t)

	e := apiError.New(10002, "An Error Message!")
	l.Error("plain", logging.Failure("error", e))
	l.Error("annotated", logging.Failure("error", e.AddOptionalMessage("Opt!")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, map[string]any{
		"error": map[string]any{"code": uint32(10002), "message": "An Error Message!"},
	}, entries[0].ContextMap())

	assert.Equal(t, map[string]any{
		"error": map[string]any{"code": uint32(10002), "message": "An Error Message!", "optional": "Opt!"},
	}, entries[1].ContextMap())
}

func TestOutcomeAndScalarFields(t *testing.T) {
	t.Parallel()

	l, logs := observed(t)

	l.With(logging.String("scenario", "int")).Info("outcome",
		logging.Outcome("result", result.Ok(12138)),
		logging.Int("signed", int8(-3)),
		logging.Uint("unsigned", uint16(7)),
		logging.Any("any", []int{1}),
	)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "int", ctx["scenario"])
	assert.Equal(t, "Ok(12138)", ctx["result"])
	assert.Equal(t, int64(-3), ctx["signed"])
	assert.Equal(t, uint64(7), ctx["unsigned"])
	assert.Equal(t, []any{1}, ctx["any"])
}

func TestContextCarrier(t *testing.T) {
	t.Parallel()

	l, logs := observed(t)

	ctx := l.GetContext(context.Background())
	logging.FromContext(ctx).Warn("from context")

	assert.Equal(t, 1, logs.FilterMessage("from context").Len())
	assert.Same(t, logging.New(), logging.FromContext(context.Background()))
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	l, err := logging.NewWithConfig(logging.Config{Production: true, Level: zapcore.WarnLevel})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NotSame(t, logging.New(), l)
}
