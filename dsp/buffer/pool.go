package buffer

import (
	"sync"

	"github.com/cwbudde/algo-audiocore/dsp/core"
)

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when
// scratch buffers are needed repeatedly on the configuration side. Pooled
// buffers are for the non-real-time thread only: Get may allocate.
type Pool[T core.Sample, L Layout] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T core.Sample, L Layout]() *Pool[T, L] {
	return &Pool[T, L]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T, L]{}
			},
		},
	}
}

// Get returns a zero-filled Buffer with the requested geometry. Negative
// dimensions are clamped to zero. Callers must return it via Put when done.
func (p *Pool[T, L]) Get(channels, frames int) *Buffer[T, L] {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	b := p.pool.Get().(*Buffer[T, L])
	b.ResizeAndClear(channels, frames)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T, L]) Put(b *Buffer[T, L]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
