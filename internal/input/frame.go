// internal/input/frame.go
package input

// Frame is the set of discrete signals read once per tick. Fire is
// edge-triggered: it is true only on the tick the key went down.
type Frame struct {
	Forward     bool `msgpack:"f,omitempty"`
	Backward    bool `msgpack:"b,omitempty"`
	TurnLeft    bool `msgpack:"tl,omitempty"`
	TurnRight   bool `msgpack:"tr,omitempty"`
	TurretLeft  bool `msgpack:"ql,omitempty"`
	TurretRight bool `msgpack:"qr,omitempty"`
	Fire        bool `msgpack:"x,omitempty"`
}

// Idle reports whether no signal is set.
func (f Frame) Idle() bool {
	return f == Frame{}
}
