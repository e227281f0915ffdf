// internal/component/movement.go
package component

import "github.com/jakecoffman/cp"

// Position — компонент позиции (центр тела)
type Position struct {
	X, Y float64
}

// Vector возвращает позицию как вектор cp.
func (p *Position) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Set переносит сущность в точку v.
func (p *Position) Set(v cp.Vector) {
	p.X, p.Y = v.X, v.Y
}

// Body — размеры прямоугольного тела
type Body struct {
	Width, Height float64
}

// Movement — желаемое направление движения и направление взгляда.
// Direction имеет длину не больше 1; Facing всегда нормирован.
type Movement struct {
	Direction cp.Vector
	Facing    cp.Vector
}
