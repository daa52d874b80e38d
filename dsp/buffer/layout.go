package buffer

// Layout maps a logical (channel, frame) address onto the single
// contiguous backing store. The mapping is pure and stateless; a Buffer
// picks its layout once, at the type level, and the compiler specializes
// every access path per layout with no indirect calls.
//
// The method set is unexported: ChannelMajor and Interleaved are the only
// implementations.
type Layout interface {
	sampleIndex(channel, frame, channels, frames int) int
	channelVector(channel, channels, frames int) (start, count, stride int)
	frameVector(frame, channels, frames int) (start, count, stride int)
}

// ChannelMajor stores all frames of one channel contiguously before the
// next channel: sample (c, f) lives at c*frames + f.
type ChannelMajor struct{}

func (ChannelMajor) sampleIndex(channel, frame, _, frames int) int {
	return channel*frames + frame
}

func (ChannelMajor) channelVector(channel, _, frames int) (int, int, int) {
	return channel * frames, frames, 1
}

func (ChannelMajor) frameVector(frame, channels, frames int) (int, int, int) {
	return frame, channels, frames
}

// Interleaved stores one frame's samples across all channels contiguously
// before the next frame: sample (c, f) lives at f*channels + c.
type Interleaved struct{}

func (Interleaved) sampleIndex(channel, frame, channels, _ int) int {
	return frame*channels + channel
}

func (Interleaved) channelVector(channel, channels, frames int) (int, int, int) {
	return channel, frames, channels
}

func (Interleaved) frameVector(frame, channels, _ int) (int, int, int) {
	return frame * channels, channels, 1
}
