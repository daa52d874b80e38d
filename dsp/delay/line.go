package delay

import (
	"fmt"

	"github.com/cwbudde/algo-audiocore/dsp/core"
	"github.com/cwbudde/algo-audiocore/dsp/interp"
	"github.com/cwbudde/algo-audiocore/dsp/ring"
)

// Mode selects the fractional-read interpolation algorithm.
type Mode int

const (
	// ModeLinear uses 2-point linear interpolation.
	ModeLinear Mode = iota
	// ModeHermite uses 4-point cubic Hermite interpolation.
	ModeHermite
)

// Line is a mono delay line over a fixed-capacity ring. Write, Read and
// ReadFractional are real-time safe.
type Line struct {
	ring      *ring.Ring[float64]
	mode      Mode
	denormals core.DenormalPolicy
}

// Option configures a Line at construction time.
type Option func(*Line)

// WithInterpolation selects the fractional-read interpolation mode.
func WithInterpolation(mode Mode) Option {
	return func(l *Line) {
		l.mode = mode
	}
}

// WithDenormalFlush makes Write flush denormal-range samples to exact
// zero, keeping feedback networks from accumulating denormals.
func WithDenormalFlush() Option {
	return func(l *Line) {
		l.denormals = core.FlushToZero
	}
}

// New returns a delay line of fixed size.
func New(size int, opts ...Option) (*Line, error) {
	r, err := ring.New[float64](size)
	if err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	l := &Line{ring: r, mode: ModeHermite}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l, nil
}

// Len returns the line's length in samples.
func (l *Line) Len() int {
	return l.ring.ActiveSize()
}

// Write writes one sample.
func (l *Line) Write(sample float64) {
	l.ring.Write(l.denormals.Apply(sample))
}

// Read reads an integer delay in samples. Read(0) is the most recent
// write; delay must be in [0, Len).
func (l *Line) Read(delay int) float64 {
	return l.ring.At(delay)
}

// ReadFractional reads a fractional delay using the configured
// interpolation mode. The delay is clamped to the representable range.
func (l *Line) ReadFractional(delay float64) float64 {
	size := l.ring.ActiveSize()
	if delay < 0 {
		delay = 0
	}

	switch l.mode {
	case ModeLinear:
		maxDelay := float64(size - 2)
		if delay > maxDelay {
			delay = maxDelay
		}
		return l.ring.ReadFractional(delay)
	default:
		maxDelay := float64(size - 3)
		if delay > maxDelay {
			delay = maxDelay
		}
		p := int(delay)
		t := delay - float64(p)

		xm1 := l.ring.At(maxInt(0, p-1))
		x0 := l.ring.At(p)
		x1 := l.ring.At(p + 1)
		x2 := l.ring.At(p + 2)
		return interp.Hermite4(t, xm1, x0, x1, x2)
	}
}

// Reset clears line state.
func (l *Line) Reset() {
	l.ring.Clear()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
