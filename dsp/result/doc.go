// Package result provides the two-state success-or-error container used by
// every fallible operation in this module. Nothing here allocates or
// panics on the checked paths, which keeps error reporting usable from the
// audio render thread; only the documented wrong-state accessors panic.
package result
