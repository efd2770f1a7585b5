package engine

// System represents one stage of the per-frame simulation pipeline.
// Systems are plain structs implementing Execute; any fields they carry persist
// between frames.
type System[T any] interface {
	Execute(frame *UpdateFrame[T])
}

// SystemFunc adapts an ordinary function to the System interface.
type SystemFunc[T any] func(frame *UpdateFrame[T])

// Execute calls f(frame).
func (f SystemFunc[T]) Execute(frame *UpdateFrame[T]) {
	f(frame)
}
