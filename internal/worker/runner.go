package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"sheetsync/internal/models"
	"sheetsync/internal/observability"
	"sheetsync/internal/pipeline"
)

const historySize = 20

// Pipeline is the sync operation the runner serializes.
type Pipeline interface {
	Run(ctx context.Context, trigger string) (*pipeline.Result, error)
}

// Runner is a bounded task queue with a single consumer goroutine. Because
// that goroutine is the only caller of the pipeline, runs are mutually
// exclusive and the destination table's atomic-replace invariant holds even
// under concurrent triggers. The queue holds at most one pending trigger;
// further triggers are dropped, never run interleaved.
type Runner struct {
	pipeline Pipeline
	queue    chan string

	mu      sync.Mutex
	history []models.SyncRun
}

// NewRunner wires a runner to its pipeline. Start must be called before
// triggers are accepted.
func NewRunner(p Pipeline) *Runner {
	return &Runner{
		pipeline: p,
		queue:    make(chan string, 1),
	}
}

// Start launches the consumer goroutine. It drains triggers until ctx is
// canceled; an in-flight run finishes before the goroutine exits.
func (r *Runner) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case trigger := <-r.queue:
				r.runOnce(ctx, trigger)
			}
		}
	}()
}

// Trigger enqueues a sync without blocking, so HTTP responses never wait on
// pipeline completion. It returns false when a run is active and another is
// already pending; that trigger is dropped with a log line.
func (r *Runner) Trigger(cause string) bool {
	select {
	case r.queue <- cause:
		return true
	default:
		log.Printf("sync already in progress, dropping trigger (cause: %s)", cause)
		return false
	}
}

// RecentRuns returns the most recent runs, newest first.
func (r *Runner) RecentRuns() []models.SyncRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	runs := make([]models.SyncRun, len(r.history))
	copy(runs, r.history)
	return runs
}

func (r *Runner) runOnce(ctx context.Context, trigger string) {
	run := models.SyncRun{
		ID:        uuid.New(),
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	log.Printf("sync run %s started (cause: %s)", run.ID, trigger)

	result, err := r.pipeline.Run(ctx, trigger)
	run.FinishedAt = time.Now()
	if err != nil {
		// The webhook caller already got its response; failures are
		// only visible here and in the run history.
		run.Error = err.Error()
		log.Printf("sync run %s failed: %v", run.ID, err)
		observability.SyncRunsTotal.WithLabelValues("failure").Inc()
	} else {
		run.Success = true
		run.RowCount = result.Rows
		log.Printf("sync run %s completed: %d rows in %s", run.ID, result.Rows, run.FinishedAt.Sub(run.StartedAt))
		observability.SyncRunsTotal.WithLabelValues("success").Inc()
		observability.SyncRowsLastRun.Set(float64(result.Rows))
	}
	observability.SyncDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())

	r.record(run)
}

func (r *Runner) record(run models.SyncRun) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append([]models.SyncRun{run}, r.history...)
	if len(r.history) > historySize {
		r.history = r.history[:historySize]
	}
}
