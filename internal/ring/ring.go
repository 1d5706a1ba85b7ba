package ring

// Buffer is a fixed-capacity, insertion-ordered store. Once full, each append
// evicts the single oldest element, so length never exceeds capacity and the
// survivors keep their relative order. Not safe for concurrent use.
type Buffer[T any] struct {
	items    []T
	capacity int
	head     int
	size     int
}

// New returns a buffer holding at most capacity elements. Capacities below
// one are clamped to one.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
}

// Append stores item, evicting the oldest element if the buffer is full.
func (b *Buffer[T]) Append(item T) {
	tail := (b.head + b.size) % b.capacity
	b.items[tail] = item
	if b.size < b.capacity {
		b.size++
		return
	}
	b.head = (b.head + 1) % b.capacity
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// Snapshot returns an independent copy of the stored elements, oldest first.
// Mutating the returned slice does not affect the buffer.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.items[(b.head+i)%b.capacity]
	}
	return out
}
