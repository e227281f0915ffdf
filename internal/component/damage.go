// internal/component/damage.go
package component

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

// DamageEvent — результат одного попадания, используется для всплывающего текста и пассивок.
type DamageEvent struct {
	Attacker types.EntityID
	Target   types.EntityID
	Base     float64
	Type     defs.DamageType
	Final    float64
	Crit     bool
	Source   string
	Time     float64
}
