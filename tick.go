package corosched

// TickSource returns the host's monotonically advancing 32-bit
// millisecond counter. Implementations must be safe to call from the
// goroutine running Scheduler.Run; they need not be safe for concurrent
// calls from elsewhere unless the host's own usage requires it.
//
// See the tickadapter sub-package for ready-made implementations.
type TickSource func() uint32

// elapsedSince computes now-lastTick under uint32 wraparound semantics,
// so a tick source wrapping past 2^32 ms (~49.7 days) still yields the
// correct short elapsed delta (SPEC_FULL.md §4.1, §8 property 6). Go's
// unsigned arithmetic already wraps modulo 2^32 for uint32, so this is
// exactly "now - lastTick" with no special-casing required.
func elapsedSince(lastTick, now uint32) uint32 {
	return now - lastTick
}
