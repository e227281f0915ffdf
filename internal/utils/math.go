// internal/utils/math.go
package utils

import (
	"math"

	"github.com/jakecoffman/cp"
)

const wholeEpsilon = 1e-9

// Whole отбрасывает дробную часть положительного значения. Все изменения здоровья
// проходят через эту функцию, чтобы урон и лечение считались одинаково.
func Whole(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Floor(x + wholeEpsilon)
}

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Direction возвращает единичный вектор от from к to или fallback, если точки совпадают.
func Direction(from, to, fallback cp.Vector) cp.Vector {
	d := to.Sub(from)
	if d.Length() < wholeEpsilon {
		return fallback
	}
	return d.Normalize()
}

// ClampLength укорачивает вектор до длины max.
func ClampLength(v cp.Vector, max float64) cp.Vector {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		return cp.Vector{}
	}
	return v.Clamp(max)
}

// BodyBB строит прямоугольник тела по центру и размерам.
func BodyBB(center cp.Vector, width, height float64) cp.BB {
	return cp.NewBBForExtents(center, width/2, height/2)
}

// RectBB строит прямоугольник по левому верхнему углу и размерам.
func RectBB(x, y, width, height float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + width, T: y + height}
}

// InOrientedRect проверяет, лежит ли точка p в прямоугольнике длиной length и шириной width,
// построенном от origin вдоль единичного вектора dir.
func InOrientedRect(p, origin, dir cp.Vector, length, width float64) bool {
	rel := p.Sub(origin)
	along := rel.Dot(dir)
	if along < 0 || along > length {
		return false
	}
	across := math.Abs(rel.Cross(dir))
	return across <= width/2
}

// InCircle проверяет попадание точки в круг.
func InCircle(p, center cp.Vector, radius float64) bool {
	return p.DistanceSq(center) <= radius*radius
}
