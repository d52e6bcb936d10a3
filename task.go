package corosched

// Handle identifies a coroutine slot. It is the slot index and remains
// stable for the lifetime of the task (SPEC_FULL.md §3, invariant 3).
type Handle int

// Self is the sentinel Handle meaning "the coroutine currently running",
// accepted by Suspend to pause the caller without naming its own handle.
const Self Handle = -1

// Anchor is an opaque resume token. The scheduler never interprets its
// value; a coroutine body assigns each of its suspension points a
// distinct Anchor and switches on the value Begin returns. See
// SPEC_FULL.md §9 (switch-based / Duff's-device strategy).
type Anchor int

// anchorStart is the Anchor every fresh callback invocation begins at,
// before the body's own switch has run. A body should treat it as "case
// 0" in its resume switch. It is unexported; it is the zero value of
// Anchor, so application code declares its own zero-valued Anchor
// constant for the same role.
const anchorStart Anchor = 0

// Callback is a coroutine body. arg is the opaque datum passed to
// CreateTask, returned unmodified on every invocation.
type Callback func(s *Scheduler, h Handle, arg any)

// task is one coroutine record (SPEC_FULL.md §3).
type task struct {
	callback     Callback
	arg          any
	resumeAnchor Anchor
	state        CoroState
	switchState  SwitchState
	timeout      uint32
}
