package corosched

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition and resource-exhaustion failures, per
// SPEC_FULL.md §7. These are returned, never panicked, so a bare-metal
// host can check them with errors.Is without unwinding anything.
var (
	// ErrAlreadyInitialized is returned by Init when called twice without
	// an intervening Deinit.
	ErrAlreadyInitialized = errors.New("corosched: scheduler already initialized")

	// ErrNotInitialized is returned by CreateTask and Run when called
	// before Init (or after Deinit).
	ErrNotInitialized = errors.New("corosched: scheduler not initialized")

	// ErrTableFull is returned by CreateTask when every user slot is
	// occupied.
	ErrTableFull = errors.New("corosched: task table full")

	// ErrNilCallback is returned by CreateTask when callback is nil.
	ErrNilCallback = errors.New("corosched: callback must not be nil")

	// ErrNilTickSource is returned by Init when tickSource is nil.
	ErrNilTickSource = errors.New("corosched: tick source must not be nil")

	// ErrReentrantRun is returned by Run when called from within a
	// coroutine callback that is itself being dispatched by the same
	// Scheduler.
	ErrReentrantRun = errors.New("corosched: cannot call Run from within a coroutine body")
)

// CapacityError reports that a requested capacity fell outside the
// [1,31] range the 5-bit slot index and the 32-bit mutex bitmap allow.
type CapacityError struct {
	Requested int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("corosched: capacity %d out of range [1,31]", e.Requested)
}

// InvalidHandleError reports that a Handle does not address a slot in
// the current table, either because it is out of range or because the
// scheduler has since been reinitialized.
type InvalidHandleError struct {
	Handle Handle
	Cause  error
}

// Error implements the error interface.
func (e *InvalidHandleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corosched: invalid handle %d: %v", e.Handle, e.Cause)
	}
	return fmt.Sprintf("corosched: invalid handle %d", e.Handle)
}

// Unwrap returns the underlying cause, if any, for errors.Is/As chains.
func (e *InvalidHandleError) Unwrap() error {
	return e.Cause
}
