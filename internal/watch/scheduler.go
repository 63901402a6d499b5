package watch

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// SchedulePeriodic starts a gocron scheduler that invokes fn every
// interval, used to force full rebuilds independent of file events.
// The caller shuts it down via the returned scheduler.
func SchedulePeriodic(interval time.Duration, fn func()) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("create periodic rebuild job: %w", err)
	}

	s.Start()
	return s, nil
}
