// internal/event/types.go
package event

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	EnemyDestroyed    EventType = "EnemyDestroyed"    // health dropped to zero
	EnemySunk         EventType = "EnemySunk"         // sink animation finished
	PlayerHit         EventType = "PlayerHit"         // projectile struck the player
	PlayerDestroyed   EventType = "PlayerDestroyed"   // player health reached zero
	ProjectileFired   EventType = "ProjectileFired"   // player or enemy shot
	ProjectileExpired EventType = "ProjectileExpired" // lifespan ran out
	PlacementFailed   EventType = "PlacementFailed"   // no free spot after all tries
	MatchEnded        EventType = "MatchEnded"        // timeline reached a terminal phase
)

// HitData accompanies PlayerHit and EnemyDestroyed.
type HitData struct {
	Target       types.EntityID
	Projectile   types.EntityID
	HealthLeft   int
	ProjectileBy component.Owner
}

// ShotData accompanies ProjectileFired.
type ShotData struct {
	Projectile types.EntityID
	Shooter    types.EntityID
	Owner      component.Owner
	Origin     mgl32.Vec3
}

// PlacementData accompanies PlacementFailed.
type PlacementData struct {
	Kind  string
	Index int
	Tries int
}

// MatchData accompanies MatchEnded.
type MatchData struct {
	Phase       component.MatchPhase
	GameTime    float64
	LiveEnemies int
}
