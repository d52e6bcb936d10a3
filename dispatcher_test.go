package corosched

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDispatcher_RoundRobinFairness is SPEC_FULL.md §8 property 3: given
// K>=2 always-Ready tasks, any window of K consecutive dispatches selects
// each exactly once, in increasing slot order modulo capacity, slot 0
// excluded.
func TestDispatcher_RoundRobinFairness(t *testing.T) {
	t.Parallel()

	var s Scheduler
	require.NoError(t, s.Init(3, fixedTick(0)))
	defer s.Deinit()

	yieldForever := func(s *Scheduler, h Handle, arg any) {
		switch s.Begin(h, anchorStart) {
		case anchorStart:
			s.Yield(h, anchorStart, StateReady, 0)
		}
	}

	var handles []Handle
	for i := 0; i < 3; i++ {
		h, err := s.CreateTask(yieldForever, nil)
		require.NoError(t, err)
		handles = append(handles, h)
	}

	var got []Handle
	for i := 0; i < 9; i++ {
		got = append(got, s.Step())
	}

	want := []Handle{1, 2, 3, 1, 2, 3, 1, 2, 3}
	require.Equal(t, want, got)
}

// TestDispatcher_IdleSelection is SPEC_FULL.md §8 property 8.
func TestDispatcher_IdleSelection(t *testing.T) {
	t.Parallel()

	var s Scheduler
	require.NoError(t, s.Init(1, fixedTick(0)))
	defer s.Deinit()

	h, err := s.CreateTask(func(s *Scheduler, h Handle, arg any) {
		switch s.Begin(h, anchorStart) {
		case anchorStart:
			s.Suspend(Self)
		}
	}, nil)
	require.NoError(t, err)

	// First dispatch runs the task once, which immediately suspends
	// itself; every dispatch thereafter must fall back to idle (slot 0).
	require.Equal(t, h, s.Step())
	for i := 0; i < 5; i++ {
		require.Equal(t, Handle(0), s.Step())
	}
}

// TestDispatcher_SingleRunnerInvariant is SPEC_FULL.md §8 property 1:
// outside a callback invocation, no slot is Running.
func TestDispatcher_SingleRunnerInvariant(t *testing.T) {
	t.Parallel()

	var s Scheduler
	require.NoError(t, s.Init(2, fixedTick(0)))
	defer s.Deinit()

	cb := func(s *Scheduler, h Handle, arg any) {
		switch s.Begin(h, anchorStart) {
		case anchorStart:
			s.Yield(h, anchorStart, StateReady, 0)
		}
	}
	_, err := s.CreateTask(cb, nil)
	require.NoError(t, err)
	_, err = s.CreateTask(cb, nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		s.Step()
		for slot := 0; slot < len(s.table); slot++ {
			require.NotEqual(t, StateRunning, s.table[slot].state, "slot %d still Running after dispatch", slot)
		}
	}
}

// TestDispatcher_FallsOffBodyReArms covers "falls off body -> Ready"
// (SPEC_FULL.md §4.4): a naked callback that never calls Yield/Sleep/
// Suspend re-runs every turn.
func TestDispatcher_FallsOffBodyReArms(t *testing.T) {
	t.Parallel()

	var s Scheduler
	require.NoError(t, s.Init(1, fixedTick(0)))
	defer s.Deinit()

	runs := 0
	_, err := s.CreateTask(func(s *Scheduler, h Handle, arg any) {
		runs++
	}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s.Step()
	}
	require.Equal(t, 3, runs)
}
