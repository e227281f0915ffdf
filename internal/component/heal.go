// internal/component/heal.go
package component

// HealOverTime лечит PerTick каждые Interval секунд, пока TicksLeft > 0.
type HealOverTime struct {
	Source    string
	PerTick   float64
	Interval  float64
	TickTimer float64
	TicksLeft int
}

// Regen — естественная регенерация и активные HoT.
type Regen struct {
	SinceDamage float64
	TickTimer   float64
	HoTs        []*HealOverTime
}
