// pkg/render/color.go
package render

import (
	"image/color"

	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor смешивает цвет с белым в пропорции t (0..1).
func LightenColor(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// WithAlpha возвращает цвет с альфой, умноженной на a (0..1).
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// RGBA хранит предумноженные компоненты
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// StatusColor — цвет индикатора статус-эффекта.
func StatusColor(kind defs.StatusKind) color.RGBA {
	switch kind {
	case defs.StatusSlowed:
		return config.SlowColor
	case defs.StatusStunned:
		return config.StunColor
	case defs.StatusFrozen:
		return config.FrozenColor
	case defs.StatusBurning:
		return config.BurnColor
	}
	return config.TextLightColor
}
