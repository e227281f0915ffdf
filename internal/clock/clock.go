// internal/clock/clock.go
package clock

import "time"

// TimeProvider отдаёт текущее время стены.
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider — реальное время.
type SystemTimeProvider struct{}

func (SystemTimeProvider) Now() time.Time { return time.Now() }

// MockTimeProvider — управляемое время для тестов.
type MockTimeProvider struct {
	current time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

func (m *MockTimeProvider) Now() time.Time { return m.current }

func (m *MockTimeProvider) SetTime(t time.Time) { m.current = t }

func (m *MockTimeProvider) Advance(d time.Duration) { m.current = m.current.Add(d) }

// FrameClock converts wall time into the simulated delta of one frame.
// Raw deltas are clamped to maxDelta before the speed multiplier is applied,
// so a stalled window cannot push the match forward by seconds at once.
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta float64
	speeds   []float64
	speedIdx int
	paused   bool
}

// NewFrameClock создаёт часы. speeds — доступные множители скорости (первый — начальный).
func NewFrameClock(provider TimeProvider, maxDelta float64, speeds []float64) *FrameClock {
	if len(speeds) == 0 {
		speeds = []float64{1}
	}
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
		speeds:   speeds,
	}
}

// Tick возвращает смоделированное время с прошлого вызова. На паузе — 0.
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	raw := now.Sub(c.last).Seconds()
	c.last = now
	if c.paused || raw <= 0 {
		return 0
	}
	if raw > c.maxDelta {
		raw = c.maxDelta
	}
	return raw * c.Speed()
}

// Speed — текущий множитель скорости.
func (c *FrameClock) Speed() float64 {
	return c.speeds[c.speedIdx]
}

// SpeedIndex — индекс текущего множителя.
func (c *FrameClock) SpeedIndex() int {
	return c.speedIdx
}

// CycleSpeed переключает x1 -> x2 -> x4 -> x1.
func (c *FrameClock) CycleSpeed() float64 {
	c.speedIdx = (c.speedIdx + 1) % len(c.speeds)
	return c.Speed()
}

func (c *FrameClock) SetPaused(paused bool) {
	c.paused = paused
}

func (c *FrameClock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *FrameClock) IsPaused() bool {
	return c.paused
}
