package state

import (
	"fmt"
)

// StateMachine validates transitions between the lifecycle states of a purge task.
type StateMachine struct {
	states      map[string]State
	transitions map[string][]string
}

// Transition declares the source states a target state may be reached from.
type Transition struct {
	TargetState         State
	AllowedSourceStates []string
}

// NewStateMachine builds a state machine from the given states and transitions.
func NewStateMachine(states []State, transitions []Transition) *StateMachine {
	statesMap := make(map[string]State)
	for _, state := range states {
		statesMap[state.String()] = state
	}

	transitionsMap := make(map[string][]string)
	for _, transition := range transitions {
		transitionsMap[transition.TargetState.String()] = transition.AllowedSourceStates
	}

	return &StateMachine{
		states:      statesMap,
		transitions: transitionsMap,
	}
}

// Transition returns an error unless the move from currentState to targetState is allowed.
func (sm *StateMachine) Transition(currentState, targetState string) error {
	if _, ok := sm.states[targetState]; !ok {
		return fmt.Errorf("incorrect state value: %s", targetState)
	}

	for _, source := range sm.transitions[targetState] {
		if source == currentState {
			return nil
		}
	}

	return fmt.Errorf("state not allowed to transition from %s to %s", currentState, targetState)
}

// NewPurgeStateMachine returns the purge task lifecycle: a created purge moves to
// completed or failed and both of those are terminal.
func NewPurgeStateMachine() *StateMachine {
	states := []State{Created, Completed, Failed}

	transitions := []Transition{
		{
			TargetState:         Completed,
			AllowedSourceStates: []string{Created.String()},
		},
		{
			TargetState:         Failed,
			AllowedSourceStates: []string{Created.String()},
		},
	}

	return NewStateMachine(states, transitions)
}
