package clock

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFrameClockReportsElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, 0.06, []float64{1, 2, 4})

	mock.Advance(16 * time.Millisecond)
	if dt := c.Tick(); !approx(dt, 0.016) {
		t.Errorf("Expected dt 0.016, got %v", dt)
	}
}

func TestFrameClockClampsLargeDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, 0.06, nil)

	mock.Advance(2 * time.Second)
	if dt := c.Tick(); !approx(dt, 0.06) {
		t.Errorf("Expected clamped dt 0.06, got %v", dt)
	}
}

func TestFrameClockSpeedAndPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, 0.06, []float64{1, 2, 4})

	if s := c.CycleSpeed(); s != 2 {
		t.Fatalf("Expected speed 2, got %v", s)
	}
	mock.Advance(10 * time.Millisecond)
	if dt := c.Tick(); !approx(dt, 0.02) {
		t.Errorf("Expected scaled dt 0.02, got %v", dt)
	}

	c.CycleSpeed()
	if s := c.CycleSpeed(); s != 1 {
		t.Errorf("Expected speed to wrap to 1, got %v", s)
	}

	c.SetPaused(true)
	mock.Advance(10 * time.Millisecond)
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %v", dt)
	}

	// Время, прошедшее на паузе, не накапливается.
	c.SetPaused(false)
	mock.Advance(5 * time.Millisecond)
	if dt := c.Tick(); !approx(dt, 0.005) {
		t.Errorf("Expected 0.005 after resume, got %v", dt)
	}
}

func TestFrameClockIgnoresBackwardsTime(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(10, 0))
	c := NewFrameClock(mock, 0.06, nil)

	mock.SetTime(time.Unix(9, 0))
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 for backwards time, got %v", dt)
	}
}
