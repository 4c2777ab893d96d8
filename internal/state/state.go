// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State описывает один экран приложения
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает состояния и помнит, запрошен ли выход
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего состояния (если оно есть) и входит в новое
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Quit просит игровой цикл остановиться после этого кадра
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Done() bool {
	return sm.quit
}
