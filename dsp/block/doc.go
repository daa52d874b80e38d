// Package block implements layout-agnostic bulk operations over views.
// All operations run in place, allocate nothing, and are safe on the
// render thread given valid views. Contiguous float64 views dispatch to
// SIMD-optimized implementations from algo-vecmath; strided views and
// float32 data take scalar loops.
package block
