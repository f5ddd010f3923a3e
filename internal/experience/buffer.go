package experience

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrBufferClosed is returned when operations are attempted on a closed buffer
var ErrBufferClosed = errors.New("experience buffer is closed")

// Buffer is a thread-safe circular buffer of transitions. When full, the
// oldest transition is dropped to make room.
type Buffer struct {
	mu       sync.RWMutex
	buffer   []*Transition
	capacity int
	size     int
	head     int
	tail     int
	closed   bool

	totalAdded   int64
	totalDropped int64

	logger zerolog.Logger
}

// NewBuffer creates a buffer with the given capacity. Non-positive
// capacities fall back to a default of 10000 transitions.
func NewBuffer(capacity int, logger zerolog.Logger) *Buffer {
	if capacity <= 0 {
		capacity = 10000
	}
	return &Buffer{
		buffer:   make([]*Transition, capacity),
		capacity: capacity,
		logger:   logger.With().Str("component", "experience_buffer").Logger(),
	}
}

// Add appends a transition, dropping the oldest one if the buffer is full.
func (b *Buffer) Add(t *Transition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBufferClosed
	}

	if b.size >= b.capacity {
		b.tail = (b.tail + 1) % b.capacity
		b.totalDropped++
		b.logger.Debug().
			Int64("dropped_total", b.totalDropped).
			Msg("Buffer full, dropping oldest transition")
	} else {
		b.size++
	}
	b.buffer[b.head] = t
	b.head = (b.head + 1) % b.capacity
	b.totalAdded++
	return nil
}

// Len returns the number of buffered transitions.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Stats returns the lifetime totals of added and dropped transitions.
func (b *Buffer) Stats() (added, dropped int64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalAdded, b.totalDropped
}

// Snapshot copies the buffered transitions in insertion order, oldest first.
func (b *Buffer) Snapshot() []*Transition {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Transition, 0, b.size)
	for i := 0; i < b.size; i++ {
		out = append(out, b.buffer[(b.tail+i)%b.capacity])
	}
	return out
}

// Clear empties the buffer without resetting the lifetime statistics.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size, b.head, b.tail = 0, 0, 0
}

// Close marks the buffer closed; further Adds fail with ErrBufferClosed.
// Snapshot keeps working so buffered data can still be drained.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
