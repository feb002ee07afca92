package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/history"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/proc"
)

const (
	MinInterval = 1 * time.Second
	MaxInterval = 10 * time.Second

	systemInterval = 1 * time.Second
	sweepInterval  = 1 * time.Minute
)

// Options are supplied by the presentation layer and can change while the
// engine runs.
type Options struct {
	Interval   time.Duration // main sampling cadence, clamped to 1-10s
	Thresholds Thresholds
	Filter     FilterOptions
	HistoryTTL time.Duration // stale-history sweep window, 0 disables
}

func (o Options) clamped() Options {
	if o.Interval < MinInterval {
		o.Interval = MinInterval
	}
	if o.Interval > MaxInterval {
		o.Interval = MaxInterval
	}
	return o
}

// Update is what the engine pushes to the presentation layer after each
// cycle.
type Update struct {
	Snapshot model.Snapshot
	System   model.SystemMetrics
	Events   []model.Event // newest first
	Paused   bool
}

// Engine drives the two sampling loops and owns reconciliation: it merges
// each filtered snapshot into the history store and derives events.
type Engine struct {
	source proc.Source
	store  *history.Store
	events *EventLog
	logger *log.Logger

	mu         sync.RWMutex
	opts       Options
	paused     bool
	current    model.Snapshot
	lastSystem model.SystemMetrics
	notify     func(Update)
}

func NewEngine(source proc.Source, logger *log.Logger) *Engine {
	return &Engine{
		source: source,
		store:  history.NewStore(),
		events: NewEventLog(),
		logger: logger,
		opts: Options{
			Interval:   2 * time.Second,
			Thresholds: DefaultThresholds,
			HistoryTTL: 10 * time.Minute,
		},
	}
}

func (e *Engine) SetOptions(opts Options) {
	e.mu.Lock()
	e.opts = opts.clamped()
	e.mu.Unlock()
}

func (e *Engine) Options() Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts
}

// SetNotify registers the presentation callback, invoked after every main
// cycle (also while paused, with the last-known snapshot).
func (e *Engine) SetNotify(fn func(Update)) {
	e.mu.Lock()
	e.notify = fn
	e.mu.Unlock()
}

// Pause suspends the main sampling loop only; system metrics keep flowing
// and no data is cleared.
func (e *Engine) Pause(paused bool) {
	e.mu.Lock()
	e.paused = paused
	e.mu.Unlock()
}

func (e *Engine) Paused() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paused
}

// Reconcile merges one already-filtered snapshot into the history store and
// returns the derived events in snapshot iteration order: for each sample
// the state-transition event, if any, then its anomaly events. Processes
// absent from the snapshot are left untouched.
func (e *Engine) Reconcile(snap model.Snapshot, now time.Time) []model.Event {
	e.mu.RLock()
	thresholds := e.opts.Thresholds
	e.mu.RUnlock()

	var events []model.Event
	for _, sample := range snap.Processes {
		if ev, ok := e.store.Upsert(sample, now); ok {
			events = append(events, ev)
		}
		events = append(events, thresholds.Evaluate(sample, now)...)
	}

	e.events.Append(events...)

	e.mu.Lock()
	e.current = snap
	e.mu.Unlock()

	return events
}

// LogAction records a debug-action outcome in the same event log the
// reconciler feeds. Failures are logged as warnings.
func (e *Engine) LogAction(res model.ActionResult) {
	sev := model.SeverityInfo
	if !res.Success {
		sev = model.SeverityWarning
	}
	e.events.Append(model.Event{Timestamp: time.Now(), Severity: sev, Message: res.Message})
	e.publish()
}

// Run blocks, driving both loops until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e.systemLoop(ctx)
	}()

	e.sampleLoop(ctx)
	wg.Wait()
	return ctx.Err()
}

func (e *Engine) sampleLoop(ctx context.Context) {
	interval := e.Options().Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastSweep := time.Now()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if cur := e.Options().Interval; cur != interval {
				interval = cur
				ticker.Reset(interval)
			}

			if e.Paused() {
				e.publish()
				continue
			}

			e.cycle(ctx)

			if ttl := e.Options().HistoryTTL; ttl > 0 && time.Since(lastSweep) >= sweepInterval {
				lastSweep = time.Now()
				if removed := e.store.Sweep(lastSweep, ttl); removed > 0 {
					e.logger.Printf("swept %d stale process histories", removed)
				}
			}
		}
	}
}

func (e *Engine) cycle(ctx context.Context) {
	snap, err := e.source.Capture(ctx)
	if err != nil {
		e.logger.Printf("snapshot capture failed: %v", err)
		return
	}

	e.mu.RLock()
	filter := e.opts.Filter
	e.mu.RUnlock()

	e.Reconcile(Filter(snap, filter), time.Now())
	e.publish()
}

func (e *Engine) systemLoop(ctx context.Context) {
	ticker := time.NewTicker(systemInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			metrics, err := e.source.CaptureSystemMetrics(ctx)
			if err != nil {
				e.logger.Printf("system metrics capture failed: %v", err)
				continue
			}
			now := time.Now()
			e.store.RecordSystem(metrics, now)

			e.mu.Lock()
			e.lastSystem = metrics
			e.mu.Unlock()
		}
	}
}

func (e *Engine) publish() {
	e.mu.RLock()
	fn := e.notify
	update := Update{
		Snapshot: e.current,
		System:   e.lastSystem,
		Paused:   e.paused,
	}
	e.mu.RUnlock()

	if fn == nil {
		return
	}
	update.Events = e.events.Recent()
	fn(update)
}

// Read model accessors.

func (e *Engine) Current() model.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

func (e *Engine) SystemMetrics() model.SystemMetrics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSystem
}

func (e *Engine) History(pid int32) (history.ProcessHistory, bool) {
	return e.store.GetByPid(pid)
}

func (e *Engine) SystemSeries() history.SystemHistory {
	return e.store.System()
}

// Children asks the source for the child processes of a pid, for the
// detailed process view.
func (e *Engine) Children(ctx context.Context, pid int32) (model.Snapshot, error) {
	return e.source.ChildrenOf(ctx, pid)
}

func (e *Engine) Events() []model.Event {
	return e.events.Recent()
}

func (e *Engine) Store() *history.Store { return e.store }

func (e *Engine) EventLog() *EventLog { return e.events }
