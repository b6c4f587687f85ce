package observe

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"airquality-api/pkg/logger"
)

func newTestHook(events *[]*sentry.Event) *SentryHook {
	return &SentryHook{
		appZone: "test",
		appName: "test-app",
		enabled: true,
		capture: func(e *sentry.Event) *sentry.EventID {
			*events = append(*events, e)
			return nil
		},
	}
}

func TestSentryHook_MapLevel(t *testing.T) {
	h := &SentryHook{}

	assert.Equal(t, sentry.LevelDebug, h.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelInfo, h.mapLevel(zapcore.InfoLevel))
	assert.Equal(t, sentry.LevelWarning, h.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelError, h.mapLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelFatal, h.mapLevel(zapcore.FatalLevel))
}

func TestSentryHook_ForwardsOnlyErrors(t *testing.T) {
	var events []*sentry.Event
	hook := newTestHook(&events)

	l := logger.NewZapLogger("test-app", "test", "debug", hook)
	l.Info("ground station fetched")
	l.Warning("weather provider not configured")
	l.Error(assert.AnError, map[string]any{"hours": 48})

	require.Len(t, events, 1)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, assert.AnError.Error(), events[0].Message)
	assert.Equal(t, "test-app", events[0].Extra["AppName"])
	assert.Equal(t, "test", events[0].Environment)
}

func TestSentryHook_DisabledOrGarbage(t *testing.T) {
	var events []*sentry.Event

	disabled := newTestHook(&events)
	disabled.enabled = false
	n, err := disabled.Write([]byte(`{"level":"error","msg":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	enabled := newTestHook(&events)
	n, err = enabled.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	assert.Empty(t, events)
}

func TestNewSentryHook_NoDSN(t *testing.T) {
	h := NewSentryHook("test", "test-app", false, "")
	assert.False(t, h.enabled)
	assert.NotPanics(t, h.Flush)
}
