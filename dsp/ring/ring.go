package ring

import (
	"fmt"

	"github.com/cwbudde/algo-audiocore/dsp/core"
	"github.com/cwbudde/algo-audiocore/dsp/interp"
	"github.com/cwbudde/algo-audiocore/dsp/result"
)

// ReadError reports why a checked ring read was rejected.
type ReadError int

// DelayTooLarge means the requested delay is not in [0, ActiveSize).
const DelayTooLarge ReadError = iota

// Error implements the error interface for interop with non-Result code.
func (e ReadError) Error() string {
	if e == DelayTooLarge {
		return "delay exceeds active size"
	}
	return "unknown ring read error"
}

// Ring is a fixed-capacity circular buffer for delay and history. All of
// its storage is allocated once at construction; no method allocates,
// which makes every operation safe on the real-time thread.
//
// The active window may be resized within the preallocated maximum, but
// never beyond it — growing is the province of [Growable].
type Ring[T core.Sample] struct {
	buf      []T
	active   int
	writeIdx int
}

// New returns a ring whose active size and maximum size are both size.
func New[T core.Sample](size int) (*Ring[T], error) {
	return NewWithMax[T](size, size)
}

// NewWithMax returns a ring with the given active size and a preallocated
// maximum it can later be resized up to without allocating.
func NewWithMax[T core.Sample](size, maxSize int) (*Ring[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring size must be > 0: %d", size)
	}
	if maxSize < size {
		return nil, fmt.Errorf("ring max size %d must be >= size %d", maxSize, size)
	}
	return &Ring[T]{buf: make([]T, maxSize), active: size}, nil
}

// NewFromData returns a ring seeded with data as if each element had been
// written in order, so At(0) returns the last element of data. The ring's
// size equals len(data); the input slice is copied, not retained.
func NewFromData[T core.Sample](data []T) (*Ring[T], error) {
	r, err := New[T](len(data))
	if err != nil {
		return nil, err
	}
	copy(r.buf, data)
	return r, nil
}

// ActiveSize returns the current active window length.
func (r *Ring[T]) ActiveSize() int {
	return r.active
}

// MaxSize returns the preallocated capacity.
func (r *Ring[T]) MaxSize() int {
	return len(r.buf)
}

// Write stores value and advances the cursor. O(1), never fails.
func (r *Ring[T]) Write(value T) {
	r.buf[r.writeIdx] = value
	r.writeIdx++
	if r.writeIdx >= r.active {
		r.writeIdx = 0
	}
}

// At returns the sample written delay writes ago without bounds checking:
// At(0) is the most recent write. The delay must be in [0, ActiveSize);
// this is the hot-path tier.
func (r *Ring[T]) At(delay int) T {
	idx := r.writeIdx - delay - 1
	if idx < 0 {
		idx += r.active
	}
	return r.buf[idx]
}

// Read returns the sample written delay writes ago, or DelayTooLarge when
// delay is not in [0, ActiveSize).
func (r *Ring[T]) Read(delay int) result.Result[T, ReadError] {
	if delay < 0 || delay >= r.active {
		return result.Err[T](DelayTooLarge)
	}
	return result.Ok[T, ReadError](r.At(delay))
}

// ReadFractional linearly interpolates between the two integer delays
// around delay. The delay must satisfy 0 <= delay < ActiveSize-1.
func (r *Ring[T]) ReadFractional(delay float64) T {
	d := int(delay)
	frac := delay - float64(d)
	y1 := float64(r.At(d))
	y2 := float64(r.At(d + 1))
	return T(interp.Linear2(frac, y1, y2))
}

// Resize shrinks or grows the active window within the preallocated
// maximum. It reports false — and changes nothing — when newSize is not in
// (0, MaxSize]; exceeding the maximum is a caller error, there is no
// allocating path here.
func (r *Ring[T]) Resize(newSize int) bool {
	if newSize <= 0 || newSize > len(r.buf) {
		return false
	}
	r.active = newSize
	r.writeIdx %= r.active
	return true
}

// Clear zero-fills all slots and resets the cursor.
func (r *Ring[T]) Clear() {
	core.Zero(r.buf)
	r.writeIdx = 0
}

// Data returns the backing store in physical order, oldest-to-newest only
// by coincidence of cursor position. Intended for tests and interop.
func (r *Ring[T]) Data() []T {
	return r.buf
}
