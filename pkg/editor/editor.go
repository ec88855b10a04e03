package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kinestream/framepipe/pkg/media"
)

// ErrDiscontinuity is returned by Submit when a frame's presentation time
// is earlier than the previous frame's. The stream must be treated as
// broken; the editor does not resynchronize.
var ErrDiscontinuity = errors.New("editor: frame discontinuity")

// Editor keeps or discards frames according to an ordered segment list and
// re-bases surviving frames onto a contiguous output timeline.
//
// An Editor must not be used from more than one goroutine at a time.
type Editor struct {
	tb       media.Rational
	segments []Segment

	cur    int // index into segments; len(segments) means drained
	tsBase float64
	tsPrev float64
}

// New parses the segment specification (see ParseSegments) and returns an
// editor positioned on the first segment. The time base scales frame PTS
// values into seconds.
func New(spec string, tb media.Rational) (*Editor, error) {
	if !tb.IsValid() {
		return nil, fmt.Errorf("editor: invalid time base %s", tb)
	}
	segments, err := ParseSegments(spec)
	if err != nil {
		return nil, err
	}
	return &Editor{tb: tb, segments: segments}, nil
}

// Segments returns the configured segment list.
func (e *Editor) Segments() []Segment { return e.segments }

// Active reports whether any segment remains open. Once false, every
// submitted frame is consumed without being forwarded.
func (e *Editor) Active() bool { return e.cur < len(e.segments) }

// Submit runs one frame through the editor.
//
// It returns the frame with its PTS rewritten onto the output timeline when
// the frame falls inside the current segment, or (nil, nil) when the frame
// is dropped. A frame at or past the current segment's end advances the
// editor to the next segment and is itself dropped; a frame at or before
// the segment's start is dropped. Decreasing input time returns
// ErrDiscontinuity.
func (e *Editor) Submit(f *media.Frame) (*media.Frame, error) {
	if !e.Active() {
		return nil, nil
	}

	inTS := e.tb.Seconds(f.PTS)
	if e.tsPrev > inTS {
		return nil, fmt.Errorf("%w: %g after %g", ErrDiscontinuity, inTS, e.tsPrev)
	}
	e.tsPrev = inTS

	seg := e.segments[e.cur]
	outTS := e.tsBase + (inTS - seg.Start)

	if inTS >= seg.End {
		e.cur++
		e.tsBase = outTS
		slog.Debug("editor: segment closed",
			"segment", seg.String(),
			"ts", inTS,
			"remaining", len(e.segments)-e.cur)
		return nil, nil
	}

	if inTS <= seg.Start {
		return nil, nil
	}

	f.PTS = e.tb.FromSeconds(outTS)
	return f, nil
}

// Reader drives an Editor from an upstream Source, itself acting as a
// Source for the edited stream.
type Reader struct {
	ed  *Editor
	src media.Source
}

// NewReader returns a Reader that pulls from src through ed.
func NewReader(ed *Editor, src media.Source) *Reader {
	return &Reader{ed: ed, src: src}
}

// Next pulls frames from upstream until the editor forwards one. It returns
// io.EOF as soon as the segment list is exhausted, without pulling further,
// and propagates upstream errors (including upstream io.EOF) unchanged.
func (r *Reader) Next() (*media.Frame, error) {
	for {
		if !r.ed.Active() {
			return nil, io.EOF
		}
		f, err := r.src.Next()
		if err != nil {
			return nil, err
		}
		out, err := r.ed.Submit(f)
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}
}
