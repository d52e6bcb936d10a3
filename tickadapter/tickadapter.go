// Package tickadapter supplies ready-made corosched.TickSource
// implementations for hosts that have a real wall clock instead of
// hardware-specific millisecond tick hardware. Grounded on the teacher's
// (github.com/joeycumines/go-eventloop) monotonic-anchor timing pattern
// in loop.go, trimmed to the single-threaded case this module needs.
package tickadapter

import "time"

// Wall returns a corosched.TickSource backed by time.Now(), anchored at
// the moment Wall is called so the returned values start near zero and
// still wrap correctly at 2^32ms like any other tick source. It works on
// every platform Go supports; Monotonic (POSIX-only) avoids the
// wall-clock calendar machinery time.Now() pulls in, where available.
func Wall() func() uint32 {
	anchor := time.Now()
	return func() uint32 {
		return uint32(time.Since(anchor).Milliseconds())
	}
}
