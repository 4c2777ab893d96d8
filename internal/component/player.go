// internal/component/player.go
package component

// Player is the user-driven vehicle. The hull's Rotation is the movement
// heading (trajectory); the cannon mirrors it.
type Player struct {
	Hull
	CannonAngle float32
	LastShotAt  float64 // game time of the last accepted shot
	HasFired    bool
	Kills       int
}
