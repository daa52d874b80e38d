// Package delay provides delay lines built on the ring and buffer
// packages: Line for mono sample delays with fractional reads, MultiLine
// for whole-frame multichannel delays.
package delay
