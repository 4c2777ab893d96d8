// internal/component/enemy.go
package component

// Enemy is an AI-controlled vehicle.
type Enemy struct {
	Hull
	Pattern            MovementPattern
	PatternTimer       float32 // seconds until the next pattern roll
	TimeSinceLastShot  float32
	TimeSinceAimedShot float32
	Destroyed          bool
	SinkDepth          float32
	SinkSpeed          float32
	Renderable         bool
	PlayerInRange      bool

	// BuildingHits counts resolved contacts per building, indexed like the
	// world's building slice.
	BuildingHits []int
}

// CountBuildingHit records a resolved contact with building i.
func (e *Enemy) CountBuildingHit(i int) {
	if i >= len(e.BuildingHits) {
		grown := make([]int, i+1)
		copy(grown, e.BuildingHits)
		e.BuildingHits = grown
	}
	e.BuildingHits[i]++
}

// Active reports whether the enemy still takes part in movement, contact
// and hit tests.
func (e *Enemy) Active() bool {
	return !e.Destroyed
}
