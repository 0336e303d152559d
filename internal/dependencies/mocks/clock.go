package mocks

import (
	"time"

	"github.com/mcoot/wordsearch-go/internal/dependencies/clock"
)

// MockClock is a controllable Clock. With a non-zero Step every call to
// Now moves time forward, so successive turns get distinct timestamps.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
	Calls       int
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a stopped MockClock at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// NewTickingClock creates a MockClock that advances by step after each read
func NewTickingClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{CurrentTime: t, Step: step}
}

// Now returns the mocked time, then applies Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.Calls++
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
