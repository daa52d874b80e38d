package ring

import (
	"fmt"

	"github.com/cwbudde/algo-audiocore/dsp/core"
)

// Growable is a circular buffer that may reallocate. It carries the full
// [Ring] surface plus ResizeBeyondMax. Keeping the growing method on a
// separate type makes "this ring can allocate" visible in signatures, so
// real-time code that accepts *Ring can never be handed a growth path.
type Growable[T core.Sample] struct {
	Ring[T]
}

// NewGrowable returns a growable ring whose active and maximum size are
// both size.
func NewGrowable[T core.Sample](size int) (*Growable[T], error) {
	r, err := New[T](size)
	if err != nil {
		return nil, err
	}
	return &Growable[T]{Ring: *r}, nil
}

// ResizeBeyondMax reallocates the ring to a new, larger maximum capacity.
// Previously written samples keep their relative delay order: for every
// delay d valid before the call, At(d) returns the same sample after it.
// The active size is unchanged; use Resize to widen the window into the
// new capacity. Non-real-time threads only — this allocates.
func (g *Growable[T]) ResizeBeyondMax(newMax int) error {
	if newMax <= g.MaxSize() {
		return fmt.Errorf("new max size %d must be greater than current max %d", newMax, g.MaxSize())
	}

	// Unroll the ring oldest-first into the head of the new store, then
	// park the cursor past the newest sample.
	next := make([]T, newMax)
	n := g.active
	for i := 0; i < n; i++ {
		next[i] = g.At(n - 1 - i)
	}
	g.buf = next
	g.writeIdx = n % g.active
	return nil
}
