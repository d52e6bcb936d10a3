package corosched

// advanceTimeouts is the timeout manager (SPEC_FULL.md §4.5). It runs
// once per dispatch cycle, before the dispatcher selects the next task:
// it samples the tick source, computes the wrap-safe elapsed delta since
// the last sample, and decays every StateWaiting slot's timeout by that
// delta, moving any that reach zero to StateReady.
//
// One pass drains at most `elapsed` ms of waiters; multiple tasks waking
// on the same tick all become Ready in the same pass, in table order.
func (s *Scheduler) advanceTimeouts() {
	now := s.tickSource()
	elapsed := elapsedSince(s.lastTick, now)
	if s.metrics != nil {
		s.metrics.recordTickDelta(elapsed)
	}
	for i := range s.table {
		t := &s.table[i]
		if t.state != StateWaiting {
			continue
		}
		if t.timeout > elapsed {
			t.timeout -= elapsed
			continue
		}
		t.timeout = 0
		t.state = StateReady
		logf(s.opts.logger, LevelDebug, "timeout", Handle(i), "waiting coroutine woke")
	}
	s.lastTick = now
}
