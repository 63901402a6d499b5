// Package watch triggers regeneration when project sources change:
// a recursive fsnotify watcher feeds a debouncer that coalesces change
// bursts, and an optional gocron schedule forces periodic rebuilds.
package watch

import (
	"context"
	"time"
)

// Debouncer coalesces bursts of change requests into single triggers.
//
// Two rules govern emission:
//   - quiet window: a trigger fires once no request has arrived for
//     QuietWindow
//   - max delay: a trigger cannot be postponed past MaxDelay after the
//     first request of a burst
type Debouncer struct {
	quietWindow time.Duration
	maxDelay    time.Duration

	requests chan struct{}
	triggers chan struct{}
}

func NewDebouncer(quietWindow, maxDelay time.Duration) *Debouncer {
	if quietWindow <= 0 {
		quietWindow = 2 * time.Second
	}
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	return &Debouncer{
		quietWindow: quietWindow,
		maxDelay:    maxDelay,
		requests:    make(chan struct{}, 1),
		triggers:    make(chan struct{}, 1),
	}
}

// Request notes that something changed. Never blocks.
func (d *Debouncer) Request() {
	select {
	case d.requests <- struct{}{}:
	default:
	}
}

// Triggers delivers coalesced rebuild signals.
func (d *Debouncer) Triggers() <-chan struct{} { return d.triggers }

// Run processes requests until ctx is done. Safe to run as a single
// goroutine.
func (d *Debouncer) Run(ctx context.Context) {
	var (
		pending  bool
		firstAt  time.Time
		deadline *time.Timer
	)

	stopTimer := func() {
		if deadline != nil {
			deadline.Stop()
			deadline = nil
		}
	}
	defer stopTimer()

	var deadlineC <-chan time.Time

	arm := func(at time.Time) {
		stopTimer()
		deadline = time.NewTimer(time.Until(at))
		deadlineC = deadline.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-d.requests:
			now := time.Now()
			if !pending {
				pending = true
				firstAt = now
			}
			next := now.Add(d.quietWindow)
			if latest := firstAt.Add(d.maxDelay); next.After(latest) {
				next = latest
			}
			arm(next)

		case <-deadlineC:
			deadlineC = nil
			if !pending {
				continue
			}
			pending = false
			select {
			case d.triggers <- struct{}{}:
			default:
			}
		}
	}
}
