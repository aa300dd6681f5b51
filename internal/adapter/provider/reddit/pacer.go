package reddit

import (
	"sync"
	"time"
)

// Pacer imposes a minimum delay between outbound requests. It is a courtesy
// pause toward the source platform's rate limits, not a scheduling guarantee.
type Pacer interface {
	Wait()
}

// IntervalPacer enforces a fixed minimum interval between consecutive Wait
// calls. Clock and sleep are injectable so pacing is testable without real
// wall-clock delay.
type IntervalPacer struct {
	interval time.Duration

	mu    sync.Mutex
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewIntervalPacer creates a pacer with the given minimum interval.
// A non-positive interval disables pacing.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	return &IntervalPacer{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait blocks until at least the configured interval has passed since the
// previous Wait call. The first call never blocks.
func (p *IntervalPacer) Wait() {
	if p.interval <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if remaining := p.interval - p.now().Sub(p.last); remaining > 0 {
			p.sleep(remaining)
		}
	}
	p.last = p.now()
}

// NoopPacer never waits. Useful in tests and when pacing is disabled.
type NoopPacer struct{}

func (NoopPacer) Wait() {}
