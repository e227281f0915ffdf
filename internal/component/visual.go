// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени осталось
	Duration float64 // Общая продолжительность эффекта
}

// FloatingText — всплывающая цифра урона или лечения.
type FloatingText struct {
	Text     string
	Color    color.RGBA
	X, Y     float64
	Timer    float64
	Duration float64
}
