// internal/component/movement.go
package component

// MovementPattern is the discrete behaviour an enemy follows between timer
// rolls.
type MovementPattern uint8

const (
	MoveForward MovementPattern = iota
	MoveBackward
	RotateCW
	RotateCCW

	PatternCount = 4
)

func (m MovementPattern) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	}
	return "unknown"
}
