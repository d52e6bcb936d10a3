//go:build linux || darwin

package tickadapter

import "golang.org/x/sys/unix"

// Monotonic returns a corosched.TickSource backed by unix.ClockGettime
// against CLOCK_MONOTONIC, for POSIX hosts that want to avoid pulling in
// the wall-clock calendar machinery time.Now() depends on. It panics if
// the host's CLOCK_MONOTONIC is unavailable, since a tick source is a
// precondition for the scheduler to function at all.
func Monotonic() func() uint32 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic("tickadapter: CLOCK_MONOTONIC unavailable: " + err.Error())
	}
	anchorSec, anchorNsec := ts.Sec, ts.Nsec

	return func() uint32 {
		var now unix.Timespec
		if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &now); err != nil {
			// A tick source must not return stale values silently; on
			// the rare clock_gettime failure, report zero elapsed since
			// anchor rather than panicking out of a running scheduler.
			return 0
		}
		deltaSec := int64(now.Sec) - int64(anchorSec)
		deltaNsec := int64(now.Nsec) - int64(anchorNsec)
		ms := deltaSec*1000 + deltaNsec/1_000_000
		return uint32(ms)
	}
}
