package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Runner dispatches sync runs.
type Runner interface {
	Trigger(cause string) bool
}

// Scheduler fires periodic syncs on a cron expression. Scheduled triggers go
// through the same serialized runner as webhook triggers, so a scheduled run
// never races a webhook-initiated one.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	runner Runner
}

// New builds a scheduler for the given cron expression.
func New(spec string, runner Runner) *Scheduler {
	return &Scheduler{cron: cron.New(), spec: spec, runner: runner}
}

// Start registers the periodic job and begins the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if !s.runner.Trigger("schedule") {
			log.Printf("scheduled sync skipped: a run is already in progress")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", s.spec, err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop. A job already dispatched to the runner finishes
// on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
