package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	scheduler *DefaultScheduler
}

func (s *SchedulerTestSuite) SetupTest() {
	s.scheduler = NewScheduler()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestCountdownExpires() {
	expired := make(chan struct{})

	s.scheduler.Schedule(&Countdown{
		Duration: 20 * time.Millisecond,
		OnExpire: func() { close(expired) },
	})

	select {
	case <-expired:
	case <-time.After(time.Second):
		s.Fail("countdown never expired")
	}
}

func (s *SchedulerTestSuite) TestCancelPreventsExpiry() {
	expired := make(chan struct{}, 1)

	cancel := s.scheduler.Schedule(&Countdown{
		Duration: 50 * time.Millisecond,
		OnExpire: func() { expired <- struct{}{} },
	})
	cancel()
	cancel() // cancelling twice is harmless

	select {
	case <-expired:
		s.Fail("cancelled countdown expired")
	case <-time.After(150 * time.Millisecond):
	}
}

func (s *SchedulerTestSuite) TestTicksReportRemainingTime() {
	var mu sync.Mutex
	var ticks []time.Duration
	expired := make(chan struct{})

	s.scheduler.Schedule(&Countdown{
		Duration: 100 * time.Millisecond,
		Step:     30 * time.Millisecond,
		OnTick: func(remaining time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			ticks = append(ticks, remaining)
		},
		OnExpire: func() { close(expired) },
	})

	select {
	case <-expired:
	case <-time.After(time.Second):
		s.Fail("countdown never expired")
	}

	mu.Lock()
	defer mu.Unlock()
	s.Require().NotEmpty(ticks)
	s.Equal(100*time.Millisecond, ticks[0])
	for i := 1; i < len(ticks); i++ {
		s.Less(ticks[i], ticks[i-1])
		s.Greater(ticks[i], time.Duration(0))
	}
}
