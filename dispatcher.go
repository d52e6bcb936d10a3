package corosched

// dispatchOnce runs exactly one dispatch cycle (SPEC_FULL.md §4.6):
// promote freshly-created slots, advance the timeout manager, select the
// next Ready or Blocked slot round-robin (skipping idle unless nothing
// else is Ready or Blocked), invoke its callback, and re-arm it to Ready
// if it returned
// still StateRunning (a naked body that never suspended).
func (s *Scheduler) dispatchOnce() Handle {
	s.promoteCreated()
	s.advanceTimeouts()

	next := s.selectNext()
	s.currentID = next

	t := &s.table[next]
	t.state = StateRunning

	if s.metrics != nil {
		s.metrics.Dispatches++
	}
	logf(s.opts.logger, LevelDebug, "dispatch", next, "running")

	s.dispatching = true
	t.callback(s, next, t.arg)
	s.dispatching = false

	if t.state == StateRunning {
		t.state = StateReady
	}
	return next
}

// promoteCreated collapses every StateCreated slot to StateReady. This
// runs at the top of every dispatch cycle (not just the first) so a
// coroutine that calls CreateTask from within its own body sees the new
// task become schedulable on the very next cycle, per SPEC_FULL.md §9.
func (s *Scheduler) promoteCreated() {
	for i := range s.table {
		if s.table[i].state == StateCreated {
			s.table[i].state = StateReady
		}
	}
}

// selectNext implements the round-robin scan starting at
// (currentID+1) mod capacity, skipping slot 0 (idle), falling back to
// idle when no other slot is Ready or Blocked.
//
// Blocked is schedulable, not parked: SPEC_FULL.md §4.3.6 has a blocked
// coroutine re-poll its mutex on every subsequent dispatch by re-entering
// the same resume anchor, so the slot must keep getting a turn even
// though Unlock never itself flips it back to Ready.
func (s *Scheduler) selectNext() Handle {
	capacity := s.capacity
	next := (int(s.currentID) + 1) % capacity
	for scanned := 0; scanned < capacity; scanned++ {
		if next != 0 {
			switch s.table[next].state {
			case StateReady, StateBlocked:
				return Handle(next)
			}
		}
		next = (next + 1) % capacity
	}
	return 0
}
