// internal/component/ai.go
package component

import "go-boss-arena/internal/defs"

// AIBehavior — что делает контроллер между решениями.
type AIBehavior string

const (
	AIApproach AIBehavior = "approach"
	AIHold     AIBehavior = "hold"
	AIFlee     AIBehavior = "flee"
)

// AIController — компонент для бойцов под управлением ИИ.
type AIController struct {
	Policy     defs.PolicyKind
	ThinkTimer float64
	Behavior   AIBehavior
}
