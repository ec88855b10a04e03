package media

import (
	"fmt"
	"io"
	"slices"
)

// Kind distinguishes audio from video streams. The distinction matters only
// for cadence: video streams advance by 1/frame_rate per frame, audio
// streams by the previous frame's sample count over the sample rate.
type Kind int

const (
	Audio Kind = iota
	Video
)

// String returns "audio" or "video".
func (k Kind) String() string {
	switch k {
	case Audio:
		return "audio"
	case Video:
		return "video"
	}
	return fmt.Sprintf("media.Kind(%d)", int(k))
}

// Frame is one timestamped unit of an elementary stream.
//
// The payload is opaque to every filter in this module; only PTS is ever
// rewritten, and only by the segment editor. NBSamples is the per-frame
// cadence hint for audio streams (sample count of this frame).
type Frame struct {
	PTS       int64
	Payload   []byte
	NBSamples int
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Payload = slices.Clone(f.Payload)
	return &c
}

// StreamInfo describes the stream-level properties a filter needs:
// the time base that scales PTS values into seconds and the nominal
// cadence of the stream.
type StreamInfo struct {
	Kind       Kind
	TimeBase   Rational
	FrameRate  Rational // video: nominal frames per second
	SampleRate int      // audio: samples per second
}

// Seconds converts a PTS in this stream's time base into seconds.
func (si StreamInfo) Seconds(pts int64) float64 {
	return si.TimeBase.Seconds(pts)
}

// Validate checks that the stream description is internally complete.
func (si StreamInfo) Validate() error {
	if !si.TimeBase.IsValid() {
		return fmt.Errorf("media: invalid time base %s", si.TimeBase)
	}
	switch si.Kind {
	case Video:
		if !si.FrameRate.IsValid() {
			return fmt.Errorf("media: video stream needs a frame rate")
		}
	case Audio:
		if si.SampleRate <= 0 {
			return fmt.Errorf("media: audio stream needs a sample rate")
		}
	default:
		return fmt.Errorf("media: unknown stream kind %d", int(si.Kind))
	}
	return nil
}

// Source is the pull side of the frame transport. Next returns the next
// frame, or io.EOF once the stream has ended. Implementations are not safe
// for concurrent use; the caller serializes access.
type Source interface {
	Next() (*Frame, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (*Frame, error)

// Next calls fn.
func (fn SourceFunc) Next() (*Frame, error) { return fn() }

// Sink is the push side of the frame transport.
type Sink interface {
	Push(*Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(*Frame) error

// Push calls fn.
func (fn SinkFunc) Push(f *Frame) error { return fn(f) }

// SliceSource returns a Source that yields the given frames in order and
// then reports io.EOF. Intended for tests and small tools.
func SliceSource(frames []*Frame) Source {
	i := 0
	return SourceFunc(func() (*Frame, error) {
		if i >= len(frames) {
			return nil, io.EOF
		}
		f := frames[i]
		i++
		return f, nil
	})
}
