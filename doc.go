// Package corosched implements a single-threaded, cooperative task
// scheduler for resource-constrained execution environments — the kind
// of round-robin coroutine multiplexer firmware reaches for when a full
// RTOS is too heavy but straight-line blocking code won't fit N
// concurrent activities onto one stack.
//
// # Architecture
//
// A [Scheduler] owns a fixed-capacity table of coroutine records
// (unexported). The application registers callbacks via
// [Scheduler.CreateTask]; [Scheduler.Run] then loops forever, each cycle
// advancing the timeout manager and invoking exactly one Ready (or
// Blocked, to re-poll its mutex) coroutine's callback round-robin,
// skipping the reserved idle slot unless nothing else is Ready or
// Blocked.
//
// Coroutine bodies cooperate by calling [Scheduler.Begin] first, then
// switching on its return value (an [Anchor]) to resume at the right
// point, and by calling [Scheduler.Yield], [Scheduler.Sleep],
// [Scheduler.Suspend] or [Scheduler.Lock] (on contention) to relinquish
// the CPU — see the package example and SPEC_FULL.md §4.3 for the full
// suspension protocol contract.
//
// # Concurrency
//
// The scheduler is not safe for concurrent use. Exactly one goroutine
// may call [Scheduler.Run] (or [Scheduler.Step]), and no other goroutine
// may call any Scheduler method while it is looping. This is not an
// oversight: the whole point of the cooperative model is that a running
// coroutine holds the CPU until it suspends, so there is never a data
// race between coroutine bodies over shared in-process memory. A host
// that needs tick-driven wakeup from an interrupt or a second goroutine
// must keep that boundary to the [TickSource] callable alone.
//
// # Usage
//
//	sched, err := corosched.New(2, tickadapter.Wall())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Deinit()
//
//	const (
//	    start corosched.Anchor = iota
//	    resumeA
//	)
//
//	a, _ := sched.CreateTask(func(s *corosched.Scheduler, h corosched.Handle, arg any) {
//	    switch s.Begin(h, start) {
//	    case start:
//	        fmt.Println("A")
//	        s.Yield(h, resumeA, corosched.StateReady, 0)
//	        return
//	    case resumeA:
//	        fmt.Println("A again")
//	    }
//	}, nil)
//	_ = a
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	_ = sched.Run(ctx)
//
// # Error Handling
//
// Precondition and resource-exhaustion failures (bad capacity, nil
// callback, table full, double-init) return sentinel or typed errors
// from errors.go — see [ErrTableFull], [ErrNotInitialized],
// [CapacityError], [InvalidHandleError]. Operations on the wrong state
// (suspending an already-terminated task, resuming one that was never
// created) are silent no-ops by design, logged at [LevelWarn] if a
// [Logger] is attached, never returned as errors — raising would
// complicate the cooperative contract for a caller that is expected to
// trust its own handles.
package corosched
