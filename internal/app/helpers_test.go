package app

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/system"
	"go-boss-arena/internal/types"
)

func hitFor(attacker, target types.EntityID) system.Hit {
	return system.Hit{
		Attacker: attacker,
		Target:   target,
		Base:     1000,
		Type:     defs.DamagePhysical,
		Source:   "test",
	}
}
