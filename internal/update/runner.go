package update

import (
	"context"
	"sync"
	"time"
)

// Runner runs cycles periodically, or when forced to,
// one at a time in its Run goroutine.
type Runner struct {
	cycle       Cycler
	period      time.Duration
	force       chan struct{}
	forceResult chan error
	logger      Logger

	lastErrMutex sync.RWMutex
	lastErr      error
}

func NewRunner(cycle Cycler, period time.Duration, logger Logger) *Runner {
	return &Runner{
		cycle:       cycle,
		period:      period,
		force:       make(chan struct{}),
		forceResult: make(chan error),
		logger:      logger,
	}
}

// Run runs a first cycle and then a cycle at each period tick
// or forced update, until the context is canceled.
func (r *Runner) Run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	r.runCycle(ctx)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.runCycle(ctx)
		case <-r.force:
			r.forceResult <- r.runCycle(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) runCycle(ctx context.Context) (err error) {
	outcome, err := r.cycle.Run(ctx)
	r.logger.Debug("cycle finished: " + outcome.String())

	r.lastErrMutex.Lock()
	r.lastErr = err
	r.lastErrMutex.Unlock()
	return err
}

// ForceUpdate triggers a cycle and waits for its error.
func (r *Runner) ForceUpdate(ctx context.Context) (err error) {
	select {
	case r.force <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err = <-r.forceResult:
		return err
	case <-ctx.Done():
		// The result is still consumed so the runner does not block.
		go func() { <-r.forceResult }()
		return ctx.Err()
	}
}

// LastError returns the error of the last cycle run,
// which is nil if it succeeded or if no cycle ran yet.
func (r *Runner) LastError() (err error) {
	r.lastErrMutex.RLock()
	defer r.lastErrMutex.RUnlock()
	return r.lastErr
}
