// Package ringbuf provides a fixed-capacity circular buffer that overwrites
// its oldest element once full.
//
// Two index spaces exist and are kept apart in the API:
//
//   - logical (age rank): 0 is the oldest retained element, Len()-1 the newest.
//     At, All and Snapshot speak this language.
//   - physical (storage slot): the raw position in the backing slice. Only Slot
//     exposes it, and its meaning shifts every time the buffer wraps.
package ringbuf

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 32

// ErrInvalidCapacity is returned when a buffer is requested with a capacity
// below one.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// CircularBuffer stores at most Cap() elements, evicting the oldest on append
// once full. It is not safe for concurrent use; callers serialize access.
type CircularBuffer[T any] struct {
	slots    []T
	capacity int
	next     int // slot overwritten by the next append once full
}

// New returns an empty buffer holding at most capacity elements.
func New[T any](capacity int) (*CircularBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ringbuf: %w (got %d)", ErrInvalidCapacity, capacity)
	}
	return &CircularBuffer[T]{
		slots:    make([]T, 0, capacity),
		capacity: capacity,
	}, nil
}

// NewDefault returns an empty buffer with DefaultCapacity.
func NewDefault[T any]() *CircularBuffer[T] {
	b, _ := New[T](DefaultCapacity)
	return b
}

// Append inserts v as the newest element.
func (b *CircularBuffer[T]) Append(v T) {
	if len(b.slots) < b.capacity {
		b.slots = append(b.slots, v)
		return
	}
	b.slots[b.next] = v
	b.next = (b.next + 1) % b.capacity
}

// Len returns the number of retained elements.
func (b *CircularBuffer[T]) Len() int {
	return len(b.slots)
}

// Cap returns the fixed capacity.
func (b *CircularBuffer[T]) Cap() int {
	return b.capacity
}

// At returns the element with age rank i, where 0 is the oldest.
// It panics if i is outside [0, Len()).
func (b *CircularBuffer[T]) At(i int) T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("ringbuf: logical index %d out of range [0, %d)", i, len(b.slots)))
	}
	return b.slots[b.physical(i)]
}

// Slot returns the element stored in physical slot i. This is not age order.
func (b *CircularBuffer[T]) Slot(i int) T {
	return b.slots[i]
}

// All returns the retained elements oldest to newest. The sequence reflects
// the buffer as it was when All was called and may be ranged over repeatedly.
// Each call copies the retained elements once, an O(Len()) allocation, so
// later appends never show up in a sequence already handed out.
func (b *CircularBuffer[T]) All() iter.Seq[T] {
	snapshot := b.Snapshot()
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Snapshot copies the retained elements into a new slice, oldest first.
func (b *CircularBuffer[T]) Snapshot() []T {
	out := make([]T, len(b.slots))
	// Two contiguous runs: [oldest, end) then [0, oldest).
	n := copy(out, b.slots[b.oldest():])
	copy(out[n:], b.slots[:b.oldest()])
	return out
}

// String renders the elements in age order, e.g. "[ 1  2  3 ]".
func (b *CircularBuffer[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range len(b.slots) {
		fmt.Fprintf(&sb, " %v ", b.At(i))
	}
	sb.WriteString("]")
	return sb.String()
}

// oldest is the physical slot of age rank 0. Before the first wrap that is
// slot 0 (and next is still 0); afterwards it is the slot about to be
// overwritten.
func (b *CircularBuffer[T]) oldest() int {
	if len(b.slots) < b.capacity {
		return 0
	}
	return b.next
}

// physical maps an age rank to a storage slot.
func (b *CircularBuffer[T]) physical(logical int) int {
	return (b.oldest() + logical) % len(b.slots)
}
