package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audiocore/dsp/buffer"
	"github.com/cwbudde/algo-audiocore/dsp/window"
)

// Option configures channel analysis.
type Option func(*config)

type config struct {
	windowType window.Type
	windowOpts []window.Option
	windowed   bool
}

// WithWindow applies the given window to the channel frames before the
// transform. Zero padding happens after windowing.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(c *config) {
		c.windowType = t
		c.windowOpts = opts
		c.windowed = true
	}
}

// Magnitude returns |X[k]| for each complex spectrum bin, using the
// SIMD-optimized unpacking from algo-vecmath.
func Magnitude(in []complex128) []float64 {
	n := len(in)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	n := len(in)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, n)
	vecmath.Power(out, re, im)
	return out
}

// ChannelMagnitude computes the magnitude spectrum of one buffer channel:
// the channel's frames are zero-padded to fftSize, transformed, and the
// non-negative-frequency bins [0 .. fftSize/2] returned.
//
// fftSize must be a power of two and at least the frame count. This
// allocates and is for analysis on the non-real-time side only.
func ChannelMagnitude[L buffer.Layout](b *buffer.Buffer[float64, L], channel, fftSize int, opts ...Option) ([]float64, error) {
	bins, err := channelSpectrum(b, channel, fftSize, opts)
	if err != nil {
		return nil, err
	}
	return Magnitude(bins), nil
}

// ChannelPower is ChannelMagnitude with squared-magnitude bins.
func ChannelPower[L buffer.Layout](b *buffer.Buffer[float64, L], channel, fftSize int, opts ...Option) ([]float64, error) {
	bins, err := channelSpectrum(b, channel, fftSize, opts)
	if err != nil {
		return nil, err
	}
	return Power(bins), nil
}

func channelSpectrum[L buffer.Layout](b *buffer.Buffer[float64, L], channel, fftSize int, opts []Option) ([]complex128, error) {
	if channel < 0 || channel >= b.NumChannels() {
		return nil, fmt.Errorf("spectrum: channel %d out of range [0, %d)", channel, b.NumChannels())
	}
	if fftSize < b.NumFrames() {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than %d frames", fftSize, b.NumFrames())
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ch := b.ChannelSpan(channel)
	frames := make([]float64, ch.Len())
	for f := range frames {
		frames[f] = ch.At(f)
	}
	if cfg.windowed {
		window.Apply(cfg.windowType, frames, cfg.windowOpts...)
	}

	in := make([]complex128, fftSize)
	for f, v := range frames {
		in[f] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	return out[:fftSize/2+1], nil
}

// PeakBin returns the index of the largest-magnitude bin, ignoring DC.
func PeakBin(mag []float64) int {
	best := 1
	if len(mag) < 2 {
		return 0
	}
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}
	return best
}
