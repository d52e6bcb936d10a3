package corosched

import "context"

// Scheduler is the single-threaded cooperative task scheduler described
// in SPEC_FULL.md. The zero value is not usable; construct one with New,
// or Init a zero value before first use.
//
// A Scheduler is not safe for concurrent use: exactly one goroutine may
// call Run, and no other goroutine may call any Scheduler method while
// Run is looping (SPEC_FULL.md §5).
type Scheduler struct {
	table      []task
	capacity   int // total slots, including idle at index 0
	currentID  Handle
	tickSource TickSource
	lastTick   uint32
	nextFree   int
	freeList   []Handle

	initialized bool
	dispatching bool // guards ErrReentrantRun

	opts    *options
	metrics *Metrics
}

// New constructs and initializes a Scheduler in one step. capacity is the
// number of user coroutines (1..31); slot 0 is reserved for idle.
func New(capacity int, tickSource TickSource, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{}
	if err := s.Init(capacity, tickSource, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Init allocates the task table and installs the idle coroutine at slot
// 0. capacity must be in [1,31]; tickSource must be non-nil. Init fails
// if the Scheduler is already initialized (call Deinit first).
func (s *Scheduler) Init(capacity int, tickSource TickSource, opts ...Option) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}
	if capacity < 1 || capacity > 31 {
		return &CapacityError{Requested: capacity}
	}
	if tickSource == nil {
		return ErrNilTickSource
	}

	cfg := resolveOptions(opts)

	s.table = make([]task, capacity+1)
	s.capacity = capacity + 1
	s.tickSource = tickSource
	s.lastTick = tickSource()
	s.nextFree = 1
	s.freeList = nil
	s.opts = cfg
	s.currentID = 0
	s.dispatching = false

	if cfg.metricsEnabled {
		s.metrics = newMetrics(cfg.metricsRing)
	} else {
		s.metrics = nil
	}

	idleBody := cfg.idleBody
	if idleBody == nil {
		idleBody = defaultIdle
	}
	s.table[0] = task{
		callback:    idleBody,
		arg:         cfg.idleArg,
		state:       StateReady,
		switchState: SwitchNormal,
	}

	s.initialized = true
	logf(s.opts.logger, LevelInfo, "lifecycle", 0, "scheduler initialized: capacity=%d", capacity)
	return nil
}

// Deinit releases the task table and clears the initialized flag. It is
// idempotent. Calling Deinit while Run is looping on another goroutine is
// undefined behavior (SPEC_FULL.md §9).
func (s *Scheduler) Deinit() {
	if !s.initialized {
		return
	}
	logf(s.opts.logger, LevelInfo, "lifecycle", 0, "scheduler deinitialized")
	s.table = nil
	s.capacity = 0
	s.tickSource = nil
	s.nextFree = 0
	s.freeList = nil
	s.metrics = nil
	s.initialized = false
}

// defaultIdle is the idle body installed when WithIdleBody is not given:
// it does nothing, per SPEC_FULL.md §4.7.
func defaultIdle(*Scheduler, Handle, any) {}

// CreateTask assigns the next free slot to callback/arg and returns its
// Handle. Slots are allocated sequentially and never reused within an
// Init cycle, unless previously reclaimed by ReapTerminated.
func (s *Scheduler) CreateTask(callback Callback, arg any) (Handle, error) {
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	if callback == nil {
		return 0, ErrNilCallback
	}

	var h Handle
	if n := len(s.freeList); n > 0 {
		h = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
	} else if s.nextFree < s.capacity {
		h = Handle(s.nextFree)
		s.nextFree++
	} else {
		logErr(s.opts.logger, LevelError, "lifecycle", 0, "create task failed", ErrTableFull)
		return 0, ErrTableFull
	}

	s.table[h] = task{
		callback:    callback,
		arg:         arg,
		state:       StateCreated,
		switchState: SwitchNormal,
	}
	logf(s.opts.logger, LevelInfo, "lifecycle", h, "task created")
	return h, nil
}

// Terminate forces h directly to StateTerminated, from any state except
// StateNone (a no-op) or an already-StateTerminated slot (also a no-op).
// The distilled spec names this transition ("any except NONE/TERMINATED
// --terminate--> TERMINATED") without defining the operation that drives
// it; Terminate is this module's resolution of that open question (see
// DESIGN.md).
func (s *Scheduler) Terminate(h Handle) error {
	t, err := s.slot(h)
	if err != nil {
		return err
	}
	if t.state == StateNone || t.state == StateTerminated {
		return nil
	}
	t.state = StateTerminated
	t.timeout = 0
	if s.metrics != nil {
		s.metrics.Terminates++
	}
	logf(s.opts.logger, LevelInfo, "lifecycle", h, "task terminated")
	return nil
}

// ReapTerminated scans the table for StateTerminated slots and returns
// them to StateNone, adding them to an internal free list that
// subsequent CreateTask calls consult before extending the table. It is
// opt-in (never called automatically) so a host that wants the
// distilled spec's strict no-reuse behavior simply never calls it.
func (s *Scheduler) ReapTerminated() []Handle {
	if !s.initialized {
		return nil
	}
	var reaped []Handle
	for i := 1; i < s.capacity; i++ {
		if s.table[i].state == StateTerminated {
			s.table[i] = task{}
			h := Handle(i)
			s.freeList = append(s.freeList, h)
			reaped = append(reaped, h)
		}
	}
	return reaped
}

// slot resolves h to its task record, validating the handle is in range
// for the current table.
func (s *Scheduler) slot(h Handle) (*task, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if h < 0 || int(h) >= s.capacity {
		return nil, &InvalidHandleError{Handle: h}
	}
	return &s.table[h], nil
}

// State returns the current CoroState of h, or StateNone with an error
// if h is out of range.
func (s *Scheduler) State(h Handle) (CoroState, error) {
	t, err := s.slot(h)
	if err != nil {
		return StateNone, err
	}
	return t.state, nil
}

// Run drives the dispatcher until ctx is done, then returns ctx.Err(); it
// never returns nil. It returns ErrNotInitialized immediately if called
// before Init, and
// ErrReentrantRun if called from within a coroutine callback currently
// being dispatched by this same Scheduler.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.dispatching {
		return ErrReentrantRun
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.dispatchOnce()
	}
}

// Step performs exactly one dispatch cycle (timeout advance + one
// callback invocation) and returns the Handle that ran. It is exposed so
// tests and embedders that want to drive the scheduler one tick at a
// time (rather than via Run's blocking loop) can do so deterministically.
func (s *Scheduler) Step() Handle {
	return s.dispatchOnce()
}
