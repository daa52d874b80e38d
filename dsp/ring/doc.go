// Package ring provides the circular buffers delay lines and history
// tracking are built on: Ring, whose storage is fixed at construction and
// whose every method is real-time safe, and Growable, which adds a
// reallocating ResizeBeyondMax for non-real-time contexts.
package ring
