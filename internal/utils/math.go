// internal/utils/math.go
package utils

import "math"

// Pi is math.Pi as a float32.
const Pi = float32(math.Pi)

const twoPi32 = 2 * Pi

// Lerp is plain linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// NormalizeAngle wraps an angle into (-π, π].
func NormalizeAngle(angle float32) float32 {
	a := float32(math.Mod(float64(angle), 2*math.Pi))
	if a <= -Pi {
		a += twoPi32
	} else if a > Pi {
		a -= twoPi32
	}
	return a
}

// AngleBetween is the signed shortest rotation from `from` to `to`, in (-π, π].
func AngleBetween(from, to float32) float32 {
	return NormalizeAngle(to - from)
}

// RotateTowards turns current toward target along the shortest path by at
// most maxStep radians and never overshoots. The result is normalized.
func RotateTowards(current, target, maxStep float32) float32 {
	diff := AngleBetween(current, target)
	if diff <= maxStep && diff >= -maxStep {
		return NormalizeAngle(target)
	}
	if diff > 0 {
		return NormalizeAngle(current + maxStep)
	}
	return NormalizeAngle(current - maxStep)
}

// LerpAngle interpolates between two angles along the shortest path.
func LerpAngle(from, to float32, t float32) float32 {
	return NormalizeAngle(from + AngleBetween(from, to)*t)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}
