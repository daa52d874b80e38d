// Package view provides non-owning windows into sample storage: Span for
// contiguous data, StridedSpan for regularly-spaced data, and View, a
// tagged union of the two with a single access surface.
//
// Views borrow storage, never own it. A view taken before a resize of its
// owner keeps referring to the old storage; holding a view across a resize
// is a caller error this package does not detect.
package view
