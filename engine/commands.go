package engine

// Commands buffers work that must run after every system of a frame has executed.
// Observers (audio, logging, persistence) are notified through it so that nothing
// they do can influence the systems still running in the same frame.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn for execution at the end of the frame.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len reports how many deferred functions are queued.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all queued functions in the order they were deferred, resetting the buffer.
// Functions deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}

	clear(c.defers)
	c.defers = c.defers[:0]
}
