package observable

// Cell holds a single owned value and a registration list of change
// listeners. Set replaces the value and notifies every listener
// synchronously, in registration order. A Cell is constructed once at
// startup and threaded through explicitly; it is not safe for concurrent
// use, matching the app's single-actor model.
type Cell[T any] struct {
	value     T
	listeners map[int]func(T)
	nextID    int
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

func (c *Cell[T]) Get() T {
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.value = v
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fn(v)
		}
	}
}

// Subscribe registers a listener for future Set calls and returns its
// unsubscribe func. Unsubscribing twice is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}
