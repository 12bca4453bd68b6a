//go:build unit

package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClockAdvancesUnderConcurrency(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(time.Second)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10*time.Second, Since(c, start))
}

func TestRealClockMovesForward(t *testing.T) {
	c := NewRealClock()
	before := c.Now()

	assert.GreaterOrEqual(t, Since(c, before), time.Duration(0))
}
