package corosched

// Mutex is a 32-bit bitmap where bit i is set iff coroutine i is
// interested in (holds or is contending for) the resource. Zero means
// free. SPEC_FULL.md §3, §4.3.6.
//
// A Mutex is a bare value owned by the application; the scheduler does
// not track which mutexes exist, only how Lock/Unlock mutate the bits
// belonging to the calling Handle.
type Mutex uint32

// NewMutex returns a free Mutex. Provided for symmetry with the rest of
// the API; the zero value is already free, so this is equivalent to
// var m corosched.Mutex.
func NewMutex() Mutex { return 0 }

// Lock attempts to acquire m on behalf of h. If m is free, Lock sets bit
// h and returns true: the caller holds the mutex and may proceed into
// its critical section. If m is held (by anyone, including h itself —
// re-entrant locking is not supported), Lock transitions h to
// StateBlocked and returns false; the caller must then return to the
// dispatcher, and the coroutine body's resume switch will re-enter this
// same call on its next turn (polling re-acquisition, per §4.3.6).
func (s *Scheduler) Lock(m *Mutex, h Handle) bool {
	t, err := s.slot(h)
	if err != nil {
		return false
	}
	if *m == 0 {
		*m |= mutexBit(h)
		logf(s.opts.logger, LevelDebug, "mutex", h, "lock acquired")
		return true
	}
	t.state = StateBlocked
	t.timeout = 0
	t.switchState = SwitchAbort
	if s.metrics != nil {
		s.metrics.Blocks++
	}
	logf(s.opts.logger, LevelDebug, "mutex", h, "lock contended, blocking")
	return false
}

// Unlock clears bit h in m. The next dispatch pass will find any
// StateBlocked coroutines and, at their next turn, let their pending
// Lock re-entry succeed. Unlock does not itself wake blocked coroutines:
// BLOCKED->READY only happens via the polling re-entry described in
// §4.3.6 (an open question the spec leaves unresolved; see DESIGN.md).
func (s *Scheduler) Unlock(m *Mutex, h Handle) {
	*m &^= mutexBit(h)
	logf(s.opts.logger, LevelDebug, "mutex", h, "unlock")
}

// mutexBit returns the single-bit Mutex mask for h.
func mutexBit(h Handle) Mutex {
	return Mutex(1) << uint(h)
}
