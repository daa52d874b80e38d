package buffer

// ResizeError reports why a resize request was rejected. The buffer is
// left exactly as it was before the call.
type ResizeError int

const (
	// InvalidChannels means the requested channel count is negative.
	InvalidChannels ResizeError = iota
	// InvalidFrames means the requested frame count is negative.
	InvalidFrames
	// OutOfMemory means the requested geometry cannot be backed: the
	// sample count overflows or exceeds the buffer's allocation cap.
	OutOfMemory
)

// Error implements the error interface for interop with non-Result code.
func (e ResizeError) Error() string {
	switch e {
	case InvalidChannels:
		return "invalid channel count"
	case InvalidFrames:
		return "invalid frame count"
	case OutOfMemory:
		return "out of memory"
	}
	return "unknown resize error"
}

// ReadError reports why a checked access was rejected.
type ReadError int

// OutOfRange means the (channel, frame) address lies outside the buffer's
// current geometry.
const OutOfRange ReadError = iota

// Error implements the error interface for interop with non-Result code.
func (e ReadError) Error() string {
	if e == OutOfRange {
		return "sample address out of range"
	}
	return "unknown read error"
}
