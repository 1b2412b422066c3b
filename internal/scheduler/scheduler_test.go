package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRunner struct {
	mu sync.Mutex
	n  int
}

func (c *countingRunner) Trigger(cause string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return true
}

func (c *countingRunner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	err := New("not a cron spec", &countingRunner{}).Start()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid cron expression")
	}
}

func TestPeriodicTrigger(t *testing.T) {
	runner := &countingRunner{}
	sched := New("@every 50ms", runner)
	assert.NoError(t, sched.Start())
	defer sched.Stop()

	assert.Eventually(t, func() bool { return runner.count() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
