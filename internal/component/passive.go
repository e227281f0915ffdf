// internal/component/passive.go
package component

import "go-boss-arena/internal/defs"

type DamageSample struct {
	Time   float64
	Amount float64
}

// DamageWindow — полученный урон за последние N секунд.
type DamageWindow struct {
	Samples []DamageSample
}

func (w *DamageWindow) Add(t, amount float64) {
	w.Samples = append(w.Samples, DamageSample{Time: t, Amount: amount})
}

// Prune удаляет записи старше now-window.
func (w *DamageWindow) Prune(now, window float64) {
	i := 0
	for i < len(w.Samples) && w.Samples[i].Time <= now-window {
		i++
	}
	w.Samples = w.Samples[i:]
}

func (w *DamageWindow) Total() float64 {
	total := 0.0
	for _, s := range w.Samples {
		total += s.Amount
	}
	return total
}

// Passive — состояние пассивной способности.
type Passive struct {
	Def            *defs.PassiveDefinition
	Stacks         int
	Active         bool
	ActiveTimer    float64
	Cooldown       float64
	SinceTriggered float64
	Window         DamageWindow
}
