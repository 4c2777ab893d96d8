// internal/component/game_state.go
package component

// MatchPhase tracks where the match is on its timeline.
type MatchPhase int

const (
	PhasePlaying MatchPhase = iota
	PhaseTimeUp             // movement frozen, projectiles cleared
	PhaseGameOver           // player destroyed
	PhaseFinished           // run loop should stop
)

func (p MatchPhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseTimeUp:
		return "time_up"
	case PhaseGameOver:
		return "game_over"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}
