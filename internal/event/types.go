// internal/event/types.go
package event

const (
	DamageDealt      EventType = "DamageDealt"      // Data: component.DamageEvent
	Healed           EventType = "Healed"           // Data: HealData
	StatusApplied    EventType = "StatusApplied"    // Data: StatusData
	StatusExpired    EventType = "StatusExpired"    // Data: StatusData
	SkillCast        EventType = "SkillCast"        // Data: SkillCastData
	PassiveTriggered EventType = "PassiveTriggered" // Data: PassiveData
	MatchEnded       EventType = "MatchEnded"       // Data: MatchEndedData
)
