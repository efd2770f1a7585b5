package engine

import "time"

// UpdateFrame is handed to every system during a single scheduler step.
type UpdateFrame[T any] struct {
	DeltaTime time.Duration
	Commands  *Commands
	State     T
}

func newUpdateFrame[T any](state T, dt time.Duration, commands *Commands) *UpdateFrame[T] {
	return &UpdateFrame[T]{
		DeltaTime: dt,
		Commands:  commands,
		State:     state,
	}
}
