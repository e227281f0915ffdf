// internal/component/game_state.go
package component

import "go-boss-arena/internal/types"

// MatchPhase — фаза матча
type MatchPhase int

const (
	MatchRunning MatchPhase = iota
	MatchOver
)

// MatchState — состояние матча. Winner == 0 при ничьей.
type MatchState struct {
	Phase  MatchPhase
	Winner types.EntityID
	Draw   bool
}
