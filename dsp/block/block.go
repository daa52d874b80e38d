package block

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audiocore/dsp/core"
	"github.com/cwbudde/algo-audiocore/dsp/view"
)

// asFloat64 extracts the contiguous float64 slice behind v, if any.
// Strided views and other element types return (nil, false) and callers
// fall back to the generic loop.
func asFloat64[T core.Sample](v view.View[T]) ([]float64, bool) {
	s, ok := v.AsSpan()
	if !ok {
		return nil, false
	}
	f, ok := any(s.Slice()).([]float64)
	return f, ok
}

// Fill sets every element of v to x.
func Fill[T core.Sample](v view.View[T], x T) {
	if s, ok := v.AsSpan(); ok {
		data := s.Slice()
		for i := range data {
			data[i] = x
		}
		return
	}
	for i := 0; i < v.Len(); i++ {
		v.Set(i, x)
	}
}

// Scale multiplies every element of v by k in place.
func Scale[T core.Sample](v view.View[T], k T) {
	if f, ok := asFloat64(v); ok {
		vecmath.ScaleBlockInPlace(f, float64(k))
		return
	}
	for i := 0; i < v.Len(); i++ {
		v.Set(i, v.At(i)*k)
	}
}

// Copy copies src into dst element-wise, stopping at the shorter view.
func Copy[T core.Sample](dst, src view.View[T]) {
	n := minLen(dst, src)
	ds, dok := dst.AsSpan()
	ss, sok := src.AsSpan()
	if dok && sok {
		copy(ds.Slice()[:n], ss.Slice()[:n])
		return
	}
	for i := 0; i < n; i++ {
		dst.Set(i, src.At(i))
	}
}

// Add accumulates src into dst element-wise, stopping at the shorter view.
func Add[T core.Sample](dst, src view.View[T]) {
	n := minLen(dst, src)
	df, dok := asFloat64(dst)
	sf, sok := asFloat64(src)
	if dok && sok {
		vecmath.AddBlockInPlace(df[:n], sf[:n])
		return
	}
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)+src.At(i))
	}
}

// Mul multiplies dst by src element-wise, stopping at the shorter view.
func Mul[T core.Sample](dst, src view.View[T]) {
	n := minLen(dst, src)
	df, dok := asFloat64(dst)
	sf, sok := asFloat64(src)
	if dok && sok {
		vecmath.MulBlockInPlace(df[:n], sf[:n])
		return
	}
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)*src.At(i))
	}
}

// Apply replaces every element x of v with op(x).
func Apply[T core.Sample](v view.View[T], op func(T) T) {
	if s, ok := v.AsSpan(); ok {
		data := s.Slice()
		for i := range data {
			data[i] = op(data[i])
		}
		return
	}
	for i := 0; i < v.Len(); i++ {
		v.Set(i, op(v.At(i)))
	}
}

// Apply2 replaces dst[i] with op(dst[i], src[i]) in lock-step, stopping at
// the shorter view.
func Apply2[T core.Sample](dst, src view.View[T], op func(T, T) T) {
	n := minLen(dst, src)
	for i := 0; i < n; i++ {
		dst.Set(i, op(dst.At(i), src.At(i)))
	}
}

func minLen[T core.Sample](a, b view.View[T]) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	return n
}
