package delay

import (
	"fmt"

	"github.com/cwbudde/algo-audiocore/dsp/block"
	"github.com/cwbudde/algo-audiocore/dsp/buffer"
	"github.com/cwbudde/algo-audiocore/dsp/core"
	"github.com/cwbudde/algo-audiocore/dsp/view"
)

// MultiLine is a multichannel frame delay over a layout-polymorphic
// buffer: one whole frame is written and read per step, so all channels
// share a single cursor and delay.
type MultiLine[T core.Sample, L buffer.Layout] struct {
	buf      *buffer.Buffer[T, L]
	frames   int
	writePos int
}

// NewMulti returns a frame delay holding delayFrames frames of channels
// samples each.
func NewMulti[T core.Sample, L buffer.Layout](channels, delayFrames int) (*MultiLine[T, L], error) {
	if channels <= 0 {
		return nil, fmt.Errorf("delay: channels must be > 0: %d", channels)
	}
	if delayFrames <= 0 {
		return nil, fmt.Errorf("delay: delayFrames must be > 0: %d", delayFrames)
	}
	return &MultiLine[T, L]{
		buf:    buffer.New[T, L](channels, delayFrames),
		frames: delayFrames,
	}, nil
}

// NumChannels returns the channel count.
func (m *MultiLine[T, L]) NumChannels() int {
	return m.buf.NumChannels()
}

// Len returns the line's length in frames.
func (m *MultiLine[T, L]) Len() int {
	return m.frames
}

// WriteFrame stores one frame (one sample per channel) and advances the
// cursor. Extra input samples beyond the channel count are ignored.
func (m *MultiLine[T, L]) WriteFrame(input []T) {
	block.Copy(m.buf.FrameSpan(m.writePos), view.FromSlice(input))
	m.writePos++
	if m.writePos >= m.frames {
		m.writePos = 0
	}
}

// ReadFrame copies the frame written delay steps ago into dst, one sample
// per channel. ReadFrame(dst, 0) is the most recent frame; delay must be
// in [0, Len).
func (m *MultiLine[T, L]) ReadFrame(dst []T, delay int) {
	pos := m.writePos - delay - 1
	if pos < 0 {
		pos += m.frames
	}
	block.Copy(view.FromSlice(dst), m.buf.FrameSpan(pos))
}

// Reset zero-fills the line and rewinds the cursor.
func (m *MultiLine[T, L]) Reset() {
	m.buf.Clear()
	m.writePos = 0
}
