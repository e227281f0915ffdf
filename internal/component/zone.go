// internal/component/zone.go
package component

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"

	"github.com/jakecoffman/cp"
)

// Zone — область на земле в форме повёрнутого прямоугольника, наносящая урон тиками.
type Zone struct {
	Owner     types.EntityID
	Source    string
	Origin    cp.Vector
	Dir       cp.Vector
	Length    float64
	Width     float64
	Damage    float64
	Type      defs.DamageType
	Interval  float64
	TickTimer float64
	TicksLeft int
}
