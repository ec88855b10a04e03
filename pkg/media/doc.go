// Package media defines the shared value types and transport interfaces for
// timestamped frame streams.
//
// A Frame carries an opaque payload and an integer presentation timestamp
// (PTS) counted in units of the stream's rational TimeBase. StreamInfo
// describes the stream-level cadence (nominal frame rate for video, sample
// rate for audio) that downstream filters use to predict where the next
// frame should sit.
//
// Transport is a pull Source / push Sink pair: a Source hands out one frame
// per Next call and reports io.EOF at end-of-stream; a Sink accepts frames
// one Push at a time. Filters in pkg/editor and pkg/fixpts wrap a Source
// and are Sources themselves, so stages compose by nesting.
package media
