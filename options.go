package corosched

// options holds configuration resolved once at New/Init time.
type options struct {
	idleBody       Callback
	idleArg        any
	logger         Logger
	metricsEnabled bool
	metricsRing    int
}

// Option configures a Scheduler at construction time.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithIdleBody overrides the default empty idle coroutine (slot 0) with
// callback, invoked with arg whenever the dispatcher falls back to idle.
// See SPEC_FULL.md §4.7.
func WithIdleBody(callback Callback, arg any) Option {
	return optionFunc(func(o *options) {
		o.idleBody = callback
		o.idleArg = arg
	})
}

// WithLogger attaches a structured Logger. Without this option the
// scheduler logs nothing (NoOpLogger).
func WithLogger(logger Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = logger
	})
}

// WithMetrics enables dispatch/state-transition counters and a small
// ring of recent tick deltas, retrievable via Scheduler.Metrics. ringSize
// must be a power of two; non-positive or non-power-of-two values fall
// back to the default of 64.
func WithMetrics(ringSize int) Option {
	return optionFunc(func(o *options) {
		o.metricsEnabled = true
		o.metricsRing = ringSize
	})
}

func resolveOptions(opts []Option) *options {
	cfg := &options{
		logger:      NoOpLogger{},
		metricsRing: defaultMetricsRing,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NoOpLogger{}
	}
	if cfg.metricsRing <= 0 || cfg.metricsRing&(cfg.metricsRing-1) != 0 {
		cfg.metricsRing = defaultMetricsRing
	}
	return cfg
}
