package buffer

import (
	"github.com/cwbudde/algo-audiocore/dsp/block"
	"github.com/cwbudde/algo-audiocore/dsp/core"
	"github.com/cwbudde/algo-audiocore/dsp/result"
	"github.com/cwbudde/algo-audiocore/dsp/view"
)

// Buffer is a multichannel sample store whose physical layout is chosen
// at the type level. All access paths are identical for both layouts;
// only the concrete shape of the views handed back differs.
//
// The buffer exclusively owns its storage. Construction and Resize are the
// only allocating operations and belong on a non-real-time thread; every
// other method is allocation-free and bounded.
type Buffer[T core.Sample, L Layout] struct {
	layout     L
	data       []T
	channels   int
	frames     int
	maxSamples int
}

// Option configures a Buffer at construction time.
type Option func(*config)

type config struct {
	maxSamples int
}

// WithMaxSamples caps the backing store at n samples. Resize requests
// needing more return OutOfMemory instead of allocating. Zero means
// unlimited.
func WithMaxSamples(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxSamples = n
		}
	}
}

// New returns a zero-filled Buffer with the given geometry. Negative
// dimensions are clamped to zero. A geometry that cannot be backed (see
// WithMaxSamples) leaves the buffer empty.
func New[T core.Sample, L Layout](channels, frames int, opts ...Option) *Buffer[T, L] {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	b := &Buffer[T, L]{maxSamples: cfg.maxSamples}
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	b.Resize(channels, frames)
	return b
}

// NumChannels returns the current channel count.
func (b *Buffer[T, L]) NumChannels() int {
	return b.channels
}

// NumFrames returns the current frame count.
func (b *Buffer[T, L]) NumFrames() int {
	return b.frames
}

// NumSamples returns channels*frames, the length of the backing store.
func (b *Buffer[T, L]) NumSamples() int {
	return len(b.data)
}

// Resize reallocates the backing store for the new geometry, preserving
// the linear prefix of the old contents. Zero on either dimension empties
// the buffer. On any error the previous geometry and contents are left
// completely untouched.
func (b *Buffer[T, L]) Resize(channels, frames int) result.Result[result.Unit, ResizeError] {
	if channels < 0 {
		return result.Err[result.Unit](InvalidChannels)
	}
	if frames < 0 {
		return result.Err[result.Unit](InvalidFrames)
	}
	if channels == 0 || frames == 0 {
		b.data = nil
		b.channels = 0
		b.frames = 0
		return result.OkUnit[ResizeError]()
	}

	n := channels * frames
	if n/channels != frames {
		return result.Err[result.Unit](OutOfMemory)
	}
	if b.maxSamples > 0 && n > b.maxSamples {
		return result.Err[result.Unit](OutOfMemory)
	}

	// Allocate before publishing any state so a failed request can never
	// leave the buffer partially resized.
	next := make([]T, n)
	copy(next, b.data)
	b.data = next
	b.channels = channels
	b.frames = frames
	return result.OkUnit[ResizeError]()
}

// ResizeAndClear resizes and, on success, zero-fills the buffer. On error
// the previous state is untouched.
func (b *Buffer[T, L]) ResizeAndClear(channels, frames int) result.Result[result.Unit, ResizeError] {
	res := b.Resize(channels, frames)
	if res.HasError() {
		return res
	}
	b.Clear()
	return res
}

// Sample returns the sample at (channel, frame) without bounds checking.
// The address must be within the current geometry; this is the hot-path
// tier for callers that have already established validity.
func (b *Buffer[T, L]) Sample(channel, frame int) T {
	return b.data[b.layout.sampleIndex(channel, frame, b.channels, b.frames)]
}

// SetSample stores value at (channel, frame) without bounds checking.
func (b *Buffer[T, L]) SetSample(channel, frame int, value T) {
	b.data[b.layout.sampleIndex(channel, frame, b.channels, b.frames)] = value
}

// SampleChecked returns the sample at (channel, frame), or OutOfRange when
// the address lies outside the current geometry.
func (b *Buffer[T, L]) SampleChecked(channel, frame int) result.Result[T, ReadError] {
	if channel < 0 || channel >= b.channels || frame < 0 || frame >= b.frames {
		return result.Err[T](OutOfRange)
	}
	return result.Ok[T, ReadError](b.Sample(channel, frame))
}

// SetSampleChecked stores value at (channel, frame), or returns OutOfRange
// when the address lies outside the current geometry.
func (b *Buffer[T, L]) SetSampleChecked(channel, frame int, value T) result.Result[result.Unit, ReadError] {
	if channel < 0 || channel >= b.channels || frame < 0 || frame >= b.frames {
		return result.Err[result.Unit](OutOfRange)
	}
	b.SetSample(channel, frame, value)
	return result.OkUnit[ReadError]()
}

// ChannelSpan returns a view over one channel: contiguous in channel-major
// layout, strided in interleaved layout. The channel must be in range.
// The view is invalidated by the next Resize.
func (b *Buffer[T, L]) ChannelSpan(channel int) view.View[T] {
	start, count, stride := b.layout.channelVector(channel, b.channels, b.frames)
	return b.vector(start, count, stride)
}

// FrameSpan returns a view over one frame: strided in channel-major
// layout, contiguous in interleaved layout. The frame must be in range.
// The view is invalidated by the next Resize.
func (b *Buffer[T, L]) FrameSpan(frame int) view.View[T] {
	start, count, stride := b.layout.frameVector(frame, b.channels, b.frames)
	return b.vector(start, count, stride)
}

// AllSpan returns a contiguous view over the whole backing store, in
// physical order. The view is invalidated by the next Resize.
func (b *Buffer[T, L]) AllSpan() view.Span[T] {
	return view.NewSpan(b.data)
}

func (b *Buffer[T, L]) vector(start, count, stride int) view.View[T] {
	if stride == 1 {
		return view.FromSlice(b.data[start : start+count])
	}
	return view.FromStridedSpan(view.NewStridedSpan(b.data[start:], count, stride))
}

// Data returns the backing store in physical order, for interop with APIs
// that require a flat buffer. The slice is invalidated by the next Resize.
func (b *Buffer[T, L]) Data() []T {
	return b.data
}

// ChannelData returns the backing store from the first sample of the given
// channel onward. In channel-major layout the first NumFrames elements are
// that channel; in interleaved layout the channel's samples are spaced
// NumChannels apart. Invalidated by the next Resize.
func (b *Buffer[T, L]) ChannelData(channel int) []T {
	start, count, stride := b.layout.channelVector(channel, b.channels, b.frames)
	if stride == 1 {
		return b.data[start : start+count]
	}
	return b.data[start:]
}

// Clear zero-fills the buffer.
func (b *Buffer[T, L]) Clear() {
	core.Zero(b.data)
}

// Fill sets every sample to value.
func (b *Buffer[T, L]) Fill(value T) {
	block.Fill(view.FromSlice(b.data), value)
}
