// internal/system/utils.go
package system

import (
	"go-tank-arena/internal/component"
)

// ApplyDamage hits an enemy for a fixed amount and deforms it. It returns
// true only on the hit that destroys the enemy.
func ApplyDamage(e *component.Enemy, damage int, deformStep float32) bool {
	e.Health -= damage
	e.Deform(deformStep)
	if e.Health <= 0 && !e.Destroyed {
		e.Destroyed = true
		return true
	}
	return false
}

// DamagePlayer hits the player and returns true when this hit is the one
// that brings health to zero.
func DamagePlayer(p *component.Player, damage int, deformStep float32) bool {
	wasAlive := p.Alive()
	p.Health -= damage
	p.Deform(deformStep)
	return wasAlive && !p.Alive()
}
