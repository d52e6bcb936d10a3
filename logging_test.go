package corosched

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	t.Parallel()

	cases := map[LogLevel]string{
		LevelDebug:    "DEBUG",
		LevelInfo:     "INFO",
		LevelWarn:     "WARN",
		LevelError:    "ERROR",
		LogLevel(99):  "UNKNOWN(99)",
		LogLevel(-1):  "UNKNOWN(-1)",
	}
	for level, want := range cases {
		require.Equal(t, want, level.String())
	}
}

func TestNoOpLogger_DiscardsAndReportsDisabled(t *testing.T) {
	t.Parallel()

	var l NoOpLogger
	require.False(t, l.IsEnabled(LevelError))
	l.Log(LogEntry{Level: LevelError, Message: "should be discarded"})
}

func TestDefaultLogger_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewDefaultLogger(&buf, LevelWarn)

	require.False(t, l.IsEnabled(LevelDebug))
	require.True(t, l.IsEnabled(LevelWarn))
	require.True(t, l.IsEnabled(LevelError))

	l.Log(LogEntry{Level: LevelDebug, Category: "dispatch", Message: "noisy"})
	require.Zero(t, buf.Len())

	l.Log(LogEntry{Level: LevelWarn, Category: "mutex", Handle: 3, Message: "no-op"})
	require.Contains(t, buf.String(), "[WARN] mutex handle=3 no-op")
}

func TestDefaultLogger_FormatsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewDefaultLogger(&buf, LevelDebug)

	l.Log(LogEntry{Level: LevelError, Category: "lifecycle", Handle: 1, Message: "create task failed", Err: ErrTableFull})
	require.True(t, strings.Contains(buf.String(), "create task failed: corosched: task table full"))
}

func TestDefaultLogger_NilOutIsNoop(t *testing.T) {
	t.Parallel()

	l := &DefaultLogger{Level: LevelDebug}
	l.Log(LogEntry{Level: LevelError, Message: "dropped"}) // must not panic
}

// TestScheduler_WithLogger_ObservesLifecycleEvents exercises the Logger
// hook end to end through WithLogger, the way a host would.
func TestScheduler_WithLogger_ObservesLifecycleEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf, LevelInfo)

	var s Scheduler
	require.NoError(t, s.Init(1, fixedTick(0), WithLogger(logger)))
	defer s.Deinit()

	_, err := s.CreateTask(func(*Scheduler, Handle, any) {}, nil)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "scheduler initialized")
	require.Contains(t, out, "task created")
}
