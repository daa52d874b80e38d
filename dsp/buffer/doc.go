// Package buffer provides the layout-polymorphic multichannel sample
// buffer the rest of the toolkit builds on. The physical layout — channel
// major or interleaved — is a type parameter, so callers write
// layout-agnostic code against views and the compiler specializes every
// access path with no run-time dispatch.
//
// Threading model: a non-real-time thread constructs and resizes buffers;
// the real-time thread only reads and writes samples and views of
// existing storage. The package provides no internal synchronization
// between the two — callers must establish a happens-before relationship
// (for example by quiescing rendering) before mutating geometry.
package buffer
